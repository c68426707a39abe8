package entities

import "time"

// InboundEvent is one parsed customer event delivered by the messaging
// channel. Exactly one of the payload pointers is set; the router dispatches
// on the first non-nil one in its documented precedence.
type InboundEvent struct {
	ID         string    `json:"id"`
	From       string    `json:"from"`
	ReceivedAt time.Time `json:"received_at"`

	Text        *TextPayload     `json:"text,omitempty"`
	ButtonReply *ReplyPayload    `json:"button_reply,omitempty"`
	ListReply   *ReplyPayload    `json:"list_reply,omitempty"`
	Location    *LocationPayload `json:"location,omitempty"`
	Image       *ImagePayload    `json:"image,omitempty"`
}

type TextPayload struct {
	Body string `json:"body"`
}

// ReplyPayload carries the opaque, convention-prefixed identifier of an
// interactive button or list selection.
type ReplyPayload struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
}

type LocationPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name,omitempty"`
	Address   string  `json:"address,omitempty"`
}

// ImagePayload references an uploaded image (payment proof). URL is a
// media reference resolvable by the OCR collaborator.
type ImagePayload struct {
	URL      string `json:"url"`
	MimeType string `json:"mime_type,omitempty"`
	Caption  string `json:"caption,omitempty"`
}
