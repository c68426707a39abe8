package interfaces

import "context"

// ReceiptData is what the OCR collaborator extracts from a payment proof.
type ReceiptData struct {
	Amount    float64
	Reference string
}

// IReceiptExtractor abstracts payment-proof extraction from an uploaded
// image. An extraction failure is returned as an error; the checkout flow
// maps it to a failed payment, it never crashes a handler.
type IReceiptExtractor interface {
	Extract(ctx context.Context, imageURL string) (ReceiptData, error)
}
