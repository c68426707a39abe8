package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/JeSappelleWilly/dokalbot/internal/domain/entities"
	"github.com/JeSappelleWilly/dokalbot/internal/usecase/interfaces"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
)

const minAddressLength = 5

// ICheckoutUseCase drives the multi-step checkout state machine:
// delivery-type selection, address/location capture, payment-method
// selection, and order confirmation or cancellation.
type ICheckoutUseCase interface {
	Initiate(ctx context.Context, customerID string) error
	ChooseDeliveryType(ctx context.Context, customerID string, deliveryType entities.DeliveryType) error
	ProcessDeliveryAddress(ctx context.Context, customerID, address string) error
	ProcessDeliveryLocation(ctx context.Context, customerID string, location entities.LocationPayload) error
	SendPaymentOptions(ctx context.Context, customerID string) error
	SelectPayment(ctx context.Context, customerID string, selectedID string) error
	ConfirmOrder(ctx context.Context, customerID string) error
	ProcessPaymentProof(ctx context.Context, customerID, imageURL string) error
	Cancel(ctx context.Context, customerID string) error
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
}

type CheckoutUseCase struct {
	states    IConversationStateUseCase
	cart      ICartUseCase
	orders    interfaces.IOrderRepository
	messenger interfaces.IMessenger
	gateway   interfaces.IPaymentGateway
	extractor interfaces.IReceiptExtractor
	publisher interfaces.IOrderEventPublisher
	orderTTL  time.Duration
	now       func() time.Time
	jitter    func(n int) int
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	states IConversationStateUseCase,
	cart ICartUseCase,
	orders interfaces.IOrderRepository,
	messenger interfaces.IMessenger,
	gateway interfaces.IPaymentGateway,
	extractor interfaces.IReceiptExtractor,
	publisher interfaces.IOrderEventPublisher,
	orderTTL time.Duration,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		states:    states,
		cart:      cart,
		orders:    orders,
		messenger: messenger,
		gateway:   gateway,
		extractor: extractor,
		publisher: publisher,
		orderTTL:  orderTTL,
		now:       time.Now,
		jitter:    rand.Intn,
	}
}

// Initiate starts checkout. An empty cart aborts with a message and leaves
// the conversation state untouched.
func (u *CheckoutUseCase) Initiate(ctx context.Context, customerID string) error {
	cart, err := u.cart.GetCart(ctx, customerID)
	if err != nil {
		return err
	}
	if cart.IsEmpty() {
		return u.messenger.SendText(ctx, customerID,
			"Your cart is empty. Please add items before checkout.")
	}

	if err := u.messenger.SendReplyButtons(ctx, customerID,
		"How would you like to receive your order?",
		[]entities.Button{
			{ID: "pickup", Title: "Pickup"},
			{ID: "delivery", Title: "Delivery"},
		},
		&entities.SendOptions{FooterText: "Choose your preferred option"},
	); err != nil {
		return err
	}

	_, err = u.states.SetOrderFlow(ctx, customerID, entities.FlowCheckout, entities.StepSelectingDeliveryType)
	return err
}

// ChooseDeliveryType branches the flow: pickup goes straight to payment,
// delivery detours through address/location capture.
func (u *CheckoutUseCase) ChooseDeliveryType(ctx context.Context, customerID string, deliveryType entities.DeliveryType) error {
	switch deliveryType {
	case entities.DeliveryTypePickup:
		if _, err := u.states.SetCheckoutInfo(ctx, customerID, entities.DeliveryTypePickup, ""); err != nil {
			return err
		}
		if err := u.messenger.SendText(ctx, customerID,
			"Pickup selected. Your order will be ready at our store in approximately 15-20 minutes."); err != nil {
			return err
		}
		return u.SendPaymentOptions(ctx, customerID)

	case entities.DeliveryTypeDelivery:
		if _, err := u.states.SetCheckoutInfo(ctx, customerID, entities.DeliveryTypeDelivery, ""); err != nil {
			return err
		}
		return u.messenger.RequestLocation(ctx, customerID,
			"You can either type your delivery address or share your current location.")

	default:
		return fmt.Errorf("unknown delivery type %q", deliveryType)
	}
}

// ProcessDeliveryAddress accepts a typed address. Too-short input re-prompts
// without advancing the step.
func (u *CheckoutUseCase) ProcessDeliveryAddress(ctx context.Context, customerID, address string) error {
	address = strings.TrimSpace(address)
	if len(address) < minAddressLength {
		return u.messenger.SendText(ctx, customerID,
			"Please provide a valid delivery address.")
	}

	if _, err := u.states.SetCheckoutInfo(ctx, customerID, entities.DeliveryTypeDelivery, address); err != nil {
		return err
	}
	if err := u.messenger.SendText(ctx, customerID,
		fmt.Sprintf("Your delivery address is set to:\n\n%s", address)); err != nil {
		return err
	}
	return u.SendPaymentOptions(ctx, customerID)
}

// ProcessDeliveryLocation converges a shared location onto the address path.
// A location without a human label is rendered as coordinates.
func (u *CheckoutUseCase) ProcessDeliveryLocation(ctx context.Context, customerID string, location entities.LocationPayload) error {
	address := location.Address
	if address == "" {
		address = location.Name
	}
	if address == "" {
		address = fmt.Sprintf("Location at %.6f, %.6f", location.Latitude, location.Longitude)
	}

	if _, err := u.states.SetCheckoutInfo(ctx, customerID, entities.DeliveryTypeDelivery, address); err != nil {
		return err
	}
	if _, err := u.states.Update(ctx, customerID, entities.StatePatch{
		LocationCoordinates: &entities.Coordinates{
			Latitude:  location.Latitude,
			Longitude: location.Longitude,
		},
	}); err != nil {
		return err
	}

	if err := u.messenger.SendText(ctx, customerID,
		fmt.Sprintf("Your delivery location is set to:\n\n%s", address)); err != nil {
		return err
	}
	return u.SendPaymentOptions(ctx, customerID)
}

func (u *CheckoutUseCase) SendPaymentOptions(ctx context.Context, customerID string) error {
	if _, err := u.states.Update(ctx, customerID, entities.StatePatch{
		Flow: entities.FlowPtr(entities.FlowCheckout),
		Step: entities.StepPtr(entities.StepSelectingPayment),
	}); err != nil {
		return err
	}

	sections := []entities.ListSection{{
		Title: "Payment options",
		Rows: []entities.ListRow{
			{ID: "pay-cash", Title: "Cash", Description: "Pay on delivery or pickup"},
			{ID: "pay-credit-card", Title: "Credit Card", Description: "Secure online payment"},
			{ID: "pay-mobile-payment", Title: "Mobile Payment", Description: "Pay via mobile app, then send proof"},
		},
	}}
	return u.messenger.SendList(ctx, customerID, "Confirm",
		"Choose your payment method:", sections, nil)
}

func paymentMethodFromID(selectedID string) entities.PaymentMethod {
	switch selectedID {
	case "pay-credit-card":
		return entities.PaymentMethodCreditCard
	case "pay-mobile-payment":
		return entities.PaymentMethodMobilePayment
	default:
		return entities.PaymentMethodCash
	}
}

func paymentMethodLabel(m entities.PaymentMethod) string {
	switch m {
	case entities.PaymentMethodCreditCard:
		return "Credit Card"
	case entities.PaymentMethodMobilePayment:
		return "Mobile Payment"
	default:
		return "Cash on Delivery/Pickup"
	}
}

// SelectPayment records the method and renders the order summary with
// explicit confirm/cancel affordances.
func (u *CheckoutUseCase) SelectPayment(ctx context.Context, customerID, selectedID string) error {
	method := paymentMethodFromID(selectedID)
	state, err := u.states.SetPaymentMethod(ctx, customerID, method)
	if err != nil {
		return err
	}

	summary, err := u.cart.Summarize(ctx, customerID)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("📋 *Order Summary*\n\n")
	for i, line := range summary.Lines {
		fmt.Fprintf(&b, "%d. %s x%d - $%.2f\n", i+1, line.Name, line.Quantity, line.LineTotal)
		if line.SpecialInstructions != "" {
			fmt.Fprintf(&b, "   _Note: %s_\n", line.SpecialInstructions)
		}
	}
	fmt.Fprintf(&b, "\n*Subtotal:* $%.2f\n", summary.Subtotal)
	fmt.Fprintf(&b, "*Tax:* $%.2f\n", summary.Tax)
	for _, d := range summary.Discounts {
		fmt.Fprintf(&b, "*Discount (%s):* -$%.2f\n", d.Code, d.Amount)
	}
	fmt.Fprintf(&b, "*Total:* $%.2f\n\n", summary.Total)
	if state.DeliveryType == entities.DeliveryTypeDelivery {
		fmt.Fprintf(&b, "*Address:* %s\n", state.DeliveryAddress)
	} else {
		b.WriteString("*Pickup in store*\n")
	}
	fmt.Fprintf(&b, "*Payment:* %s\n\n", paymentMethodLabel(method))
	b.WriteString("Confirm or cancel your order.")

	if err := u.messenger.SendText(ctx, customerID, b.String()); err != nil {
		return err
	}
	return u.messenger.SendReplyButtons(ctx, customerID, "Place your order now?",
		[]entities.Button{
			{ID: "confirm-order", Title: "Place Order"},
			{ID: "cancel-order", Title: "Cancel"},
		},
		nil,
	)
}

// buildOrder snapshots cart and state into a new order. The estimated ready
// time is computed once here and never recomputed.
func (u *CheckoutUseCase) buildOrder(customerID string, cart entities.Cart, state entities.ConversationState) entities.Order {
	deliveryType := state.DeliveryType
	if deliveryType == "" {
		deliveryType = entities.DeliveryTypePickup
	}
	method := state.PaymentMethod
	if method == "" {
		method = entities.PaymentMethodCash
	}

	now := u.now()
	var estimated time.Duration
	if deliveryType == entities.DeliveryTypeDelivery {
		estimated = time.Duration(30+u.jitter(16)) * time.Minute // 30-45 min
	} else {
		estimated = time.Duration(15+u.jitter(6)) * time.Minute // 15-20 min
	}

	return entities.Order{
		ID:               "ORD-" + strings.ToUpper(uuid.NewString()[:8]),
		CustomerID:       customerID,
		Items:            cart.Items,
		Subtotal:         cart.Subtotal,
		Tax:              cart.Tax,
		Total:            cart.Total,
		Discounts:        cart.Discounts,
		DeliveryType:     deliveryType,
		DeliveryAddress:  state.DeliveryAddress,
		PaymentMethod:    method,
		Status:           entities.OrderStatusPending,
		CreatedAt:        now,
		EstimatedReadyAt: now.Add(estimated),
	}
}

// ConfirmOrder creates the order snapshot and runs the confirmation variant
// selected by the payment method: mobile payments go through proof upload,
// everything else through the synchronous path.
func (u *CheckoutUseCase) ConfirmOrder(ctx context.Context, customerID string) error {
	state, err := u.states.Get(ctx, customerID)
	if err != nil {
		return err
	}
	cart, err := u.cart.GetCart(ctx, customerID)
	if err != nil {
		return err
	}
	if cart.IsEmpty() {
		return u.messenger.SendText(ctx, customerID,
			"Your cart is empty. Please add items before checkout.")
	}

	order := u.buildOrder(customerID, cart, state)

	if order.PaymentMethod == entities.PaymentMethodMobilePayment {
		return u.confirmWithProofUpload(ctx, customerID, order)
	}
	return u.confirmWithSynchronousGateway(ctx, customerID, order)
}

func (u *CheckoutUseCase) confirmWithSynchronousGateway(ctx context.Context, customerID string, order entities.Order) error {
	if err := u.orders.Save(ctx, order, u.orderTTL); err != nil {
		log.Error().Err(err).Str("order_id", order.ID).Msg("failed persisting order")
		return err
	}

	approved := true
	if order.PaymentMethod == entities.PaymentMethodCreditCard {
		if u.gateway == nil {
			approved = false
		} else {
			result, err := u.gateway.Charge(ctx, order)
			if err != nil {
				log.Warn().Err(err).Str("order_id", order.ID).Msg("payment charge failed")
				approved = false
			} else {
				approved = result.Approved
			}
		}
	}

	if !approved {
		if err := u.orders.UpdateStatus(ctx, order.ID, entities.OrderStatusPaymentFailed); err != nil {
			log.Error().Err(err).Str("order_id", order.ID).Msg("failed marking order payment_failed")
		}
		if err := u.messenger.SendText(ctx, customerID,
			"Sorry, there was an issue processing your payment. Please try again or select a different payment method."); err != nil {
			return err
		}
		return u.SendPaymentOptions(ctx, customerID)
	}

	if err := u.orders.UpdateStatus(ctx, order.ID, entities.OrderStatusPaymentConfirmed); err != nil {
		log.Error().Err(err).Str("order_id", order.ID).Msg("failed marking order payment_confirmed")
	}
	order.Status = entities.OrderStatusPaymentConfirmed
	return u.finalize(ctx, customerID, order)
}

// confirmWithProofUpload persists the order as awaiting proof and parks the
// conversation until an image arrives.
func (u *CheckoutUseCase) confirmWithProofUpload(ctx context.Context, customerID string, order entities.Order) error {
	order.Status = entities.OrderStatusPendingPaymentConfirmation
	if err := u.orders.Save(ctx, order, u.orderTTL); err != nil {
		log.Error().Err(err).Str("order_id", order.ID).Msg("failed persisting order")
		return err
	}

	if _, err := u.states.Update(ctx, customerID, entities.StatePatch{
		Flow:           entities.FlowPtr(entities.FlowCheckout),
		Step:           entities.StepPtr(entities.StepWaitingForPaymentConfirmation),
		CurrentOrderID: entities.StringPtr(order.ID),
	}); err != nil {
		return err
	}

	return u.messenger.SendText(ctx, customerID, fmt.Sprintf(
		"Order %s is reserved. Please complete the mobile payment of $%.2f and send a photo of your receipt to confirm.",
		order.ID, order.Total))
}

// ProcessPaymentProof handles the inbound proof image for the order parked in
// waiting_for_payment_confirmation.
func (u *CheckoutUseCase) ProcessPaymentProof(ctx context.Context, customerID, imageURL string) error {
	state, err := u.states.Get(ctx, customerID)
	if err != nil {
		return err
	}
	if state.CurrentOrderID == "" {
		return u.messenger.SendText(ctx, customerID,
			"We couldn't find an order awaiting payment. Type *menu* to start a new one.")
	}

	order, err := u.orders.GetByID(ctx, state.CurrentOrderID)
	if err != nil {
		return err
	}

	data, extractErr := u.extractor.Extract(ctx, imageURL)
	if extractErr != nil {
		log.Warn().Err(extractErr).Str("order_id", order.ID).Msg("payment proof extraction failed")
		if err := u.orders.UpdateStatus(ctx, order.ID, entities.OrderStatusPaymentFailed); err != nil {
			log.Error().Err(err).Str("order_id", order.ID).Msg("failed marking order payment_failed")
		}
		if err := u.messenger.SendText(ctx, customerID,
			"We couldn't read your payment receipt. Please send a clearer photo, or reach out for help."); err != nil {
			return err
		}
		return u.messenger.SendReplyButtons(ctx, customerID, "What would you like to do?",
			[]entities.Button{
				{ID: "help", Title: "Contact Support"},
				{ID: "cancel-order", Title: "Cancel Order"},
			},
			nil,
		)
	}

	log.Info().Str("order_id", order.ID).Float64("amount", data.Amount).
		Str("reference", data.Reference).Msg("payment proof extracted")

	if err := u.orders.UpdateStatus(ctx, order.ID, entities.OrderStatusPaymentConfirmed); err != nil {
		log.Error().Err(err).Str("order_id", order.ID).Msg("failed marking order payment_confirmed")
	}
	order.Status = entities.OrderStatusPaymentConfirmed
	return u.finalize(ctx, customerID, order)
}

// finalize is the shared tail of both confirmation variants: publish, clear
// the cart, reset the conversation, and confirm to the customer.
func (u *CheckoutUseCase) finalize(ctx context.Context, customerID string, order entities.Order) error {
	if u.publisher != nil {
		if err := u.publisher.PublishOrderConfirmed(ctx, order); err != nil {
			log.Error().Err(err).Str("order_id", order.ID).Msg("failed publishing order event")
		}
	}

	if err := u.cart.Clear(ctx, customerID); err != nil {
		return err
	}
	if _, err := u.states.Reset(ctx, customerID); err != nil {
		return err
	}

	var eta string
	if order.DeliveryType == entities.DeliveryTypeDelivery {
		eta = fmt.Sprintf("Estimated delivery time: %s", order.EstimatedReadyAt.Format("3:04 PM"))
	} else {
		minutes := int(order.EstimatedReadyAt.Sub(u.now()).Minutes())
		eta = fmt.Sprintf("Your order will be ready for pickup in approximately %d minutes.", minutes)
	}

	if err := u.messenger.SendText(ctx, customerID, fmt.Sprintf(
		"✅ *Order confirmed!*\n\nYour order %s has been received and is being prepared.\n\n%s\n\nThank you for your order!",
		order.ID, eta)); err != nil {
		return err
	}

	if err := u.messenger.SendTemplate(ctx, customerID, "order_receipt", "en",
		[]string{order.ID, fmt.Sprintf("%.2f", order.Total)}); err != nil {
		log.Warn().Err(err).Str("order_id", order.ID).Msg("failed sending receipt template")
	}

	return u.messenger.SendReplyButtons(ctx, customerID,
		"Start a new order or check your order status.",
		[]entities.Button{
			{ID: "main-menu", Title: "Main Menu"},
			{ID: "my-orders", Title: "My Orders"},
		},
		&entities.SendOptions{HeaderText: "What next?"},
	)
}

// Cancel aborts a checkout from any step. The cart is deliberately kept so
// the customer can resume later; only a confirmed order clears it.
func (u *CheckoutUseCase) Cancel(ctx context.Context, customerID string) error {
	if _, err := u.states.Reset(ctx, customerID); err != nil {
		return err
	}
	if err := u.messenger.SendText(ctx, customerID,
		"Order cancelled. Your items are saved for later."); err != nil {
		return err
	}
	return u.messenger.SendReplyButtons(ctx, customerID,
		"Keep shopping or review your cart.",
		[]entities.Button{
			{ID: "main-menu", Title: "Main Menu"},
			{ID: "view-cart", Title: "View Cart"},
		},
		nil,
	)
}

func (u *CheckoutUseCase) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}
