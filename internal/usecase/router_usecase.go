package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/JeSappelleWilly/dokalbot/internal/domain/entities"
	"github.com/JeSappelleWilly/dokalbot/internal/usecase/interfaces"
)

const fallbackReply = "Sorry, I didn't understand that. Please use the menu below."

// RouterUseCase turns raw inbound events into use case calls. Dispatch order
// is fixed: list reply, then button reply, then text, then image, then
// location. Reserved keywords in text win over any step context.
type RouterUseCase struct {
	guard     *DuplicateGuard
	states    IConversationStateUseCase
	cart      ICartUseCase
	checkout  ICheckoutUseCase
	menu      *MenuUseCase
	catalog   interfaces.ICatalog
	messenger interfaces.IMessenger
}

var _ interfaces.IEventRouter = (*RouterUseCase)(nil)

func NewRouterUseCase(
	guard *DuplicateGuard,
	states IConversationStateUseCase,
	cart ICartUseCase,
	checkout ICheckoutUseCase,
	menu *MenuUseCase,
	catalog interfaces.ICatalog,
	messenger interfaces.IMessenger,
) *RouterUseCase {
	return &RouterUseCase{
		guard:     guard,
		states:    states,
		cart:      cart,
		checkout:  checkout,
		menu:      menu,
		catalog:   catalog,
		messenger: messenger,
	}
}

// HandleEvent is idempotent per event id: the duplicate guard runs before any
// side effect. A handler error never reaches the webhook layer; the customer
// gets a generic apology plus navigation instead.
func (r *RouterUseCase) HandleEvent(ctx context.Context, event entities.InboundEvent) error {
	if r.guard.CheckAndMark(ctx, event.ID) {
		return nil
	}

	state, err := r.states.Get(ctx, event.From)
	if err != nil {
		return r.recover(ctx, event.From, err)
	}

	switch {
	case event.ListReply != nil:
		err = r.handleListReply(ctx, event.From, state, *event.ListReply)
	case event.ButtonReply != nil:
		err = r.handleButtonReply(ctx, event.From, state, *event.ButtonReply)
	case event.Text != nil:
		err = r.handleText(ctx, event.From, state, event.Text.Body)
	case event.Image != nil:
		err = r.handleImage(ctx, event.From, state, *event.Image)
	case event.Location != nil:
		err = r.handleLocation(ctx, event.From, state, *event.Location)
	default:
		err = r.messenger.SendText(ctx, event.From,
			"Please use the menu to place your order.")
	}

	if err != nil {
		return r.recover(ctx, event.From, err)
	}
	return nil
}

func (r *RouterUseCase) recover(ctx context.Context, customerID string, cause error) error {
	log.Error().Err(cause).Str("customer_id", customerID).Msg("event handling failed")
	if err := r.messenger.SendText(ctx, customerID,
		"Sorry, something went wrong on our side. Please try again."); err != nil {
		return err
	}
	return r.menu.SendNavigationButtons(ctx, customerID)
}

// handleText resolves reserved keywords first, then step-specific free text,
// then falls back. Keywords always win so a stuck customer can always type
// "menu" and escape.
func (r *RouterUseCase) handleText(ctx context.Context, customerID string, state entities.ConversationState, body string) error {
	text := strings.ToLower(strings.TrimSpace(body))

	switch text {
	case "start", "hi", "hello":
		return r.menu.SendWelcome(ctx, customerID)
	case "menu":
		if _, err := r.states.Reset(ctx, customerID); err != nil {
			return err
		}
		return r.menu.SendMainMenu(ctx, customerID)
	case "help":
		return r.menu.SendHelp(ctx, customerID)
	case "cart":
		return r.showCart(ctx, customerID)
	case "checkout":
		return r.checkout.Initiate(ctx, customerID)
	case "cancel":
		return r.checkout.Cancel(ctx, customerID)
	}

	if code, ok := promoCode(text); ok {
		return r.applyPromo(ctx, customerID, code)
	}

	if state.Flow == entities.FlowCheckout && state.Step == entities.StepLocationInput {
		return r.checkout.ProcessDeliveryAddress(ctx, customerID, body)
	}

	if state.Flow == entities.FlowCustomizing && state.Step == entities.StepSpecialInstructions {
		return r.finishCustomization(ctx, customerID, state, strings.TrimSpace(body))
	}

	if err := r.messenger.SendText(ctx, customerID, fallbackReply); err != nil {
		return err
	}
	return r.menu.SendNavigationButtons(ctx, customerID)
}

// promoCode parses "promo CODE" / "discount CODE".
func promoCode(text string) (string, bool) {
	for _, prefix := range []string{"promo ", "discount "} {
		if strings.HasPrefix(text, prefix) {
			code := strings.TrimSpace(strings.TrimPrefix(text, prefix))
			if code != "" {
				return code, true
			}
		}
	}
	return "", false
}

func (r *RouterUseCase) applyPromo(ctx context.Context, customerID, code string) error {
	result, err := r.cart.ApplyDiscount(ctx, customerID, code)
	if err != nil {
		return err
	}
	if !result.Success {
		return r.messenger.SendText(ctx, customerID,
			"That promo code is not valid or was already applied.")
	}
	if err := r.messenger.SendText(ctx, customerID,
		fmt.Sprintf("Promo applied! You saved $%.2f.", result.Amount)); err != nil {
		return err
	}
	return r.showCart(ctx, customerID)
}

func (r *RouterUseCase) showCart(ctx context.Context, customerID string) error {
	summary, err := r.cart.Summarize(ctx, customerID)
	if err != nil {
		return err
	}
	return r.menu.RenderCartSummary(ctx, customerID, summary)
}

func (r *RouterUseCase) handleButtonReply(ctx context.Context, customerID string, state entities.ConversationState, reply entities.ReplyPayload) error {
	switch reply.ID {
	case "main-menu":
		if _, err := r.states.Reset(ctx, customerID); err != nil {
			return err
		}
		return r.menu.SendMainMenu(ctx, customerID)
	case "specials":
		if _, err := r.states.SetMenuContext(ctx, customerID, "specials", ""); err != nil {
			return err
		}
		return r.menu.SendSpecialsMenu(ctx, customerID)
	case "help":
		return r.menu.SendHelp(ctx, customerID)
	case "view-cart":
		return r.showCart(ctx, customerID)
	case "checkout":
		return r.checkout.Initiate(ctx, customerID)
	case "pickup":
		return r.checkout.ChooseDeliveryType(ctx, customerID, entities.DeliveryTypePickup)
	case "delivery":
		return r.checkout.ChooseDeliveryType(ctx, customerID, entities.DeliveryTypeDelivery)
	case "confirm-order":
		return r.checkout.ConfirmOrder(ctx, customerID)
	case "cancel-order":
		return r.checkout.Cancel(ctx, customerID)
	case "add-instructions":
		if _, err := r.states.SetOrderFlow(ctx, customerID,
			entities.FlowCustomizing, entities.StepSpecialInstructions); err != nil {
			return err
		}
		return r.messenger.SendText(ctx, customerID,
			"Please type any special instructions for this item (e.g. \"no onions\").")
	case "confirm-customization":
		return r.finishCustomization(ctx, customerID, state, "")
	case "my-orders":
		return r.showOrderStatus(ctx, customerID, state)
	}

	switch {
	case strings.HasPrefix(reply.ID, "add-"):
		return r.addItem(ctx, customerID, strings.TrimPrefix(reply.ID, "add-"))
	case strings.HasPrefix(reply.ID, "remove-"):
		if _, err := r.cart.RemoveItem(ctx, customerID, strings.TrimPrefix(reply.ID, "remove-")); err != nil {
			return err
		}
		return r.showCart(ctx, customerID)
	case strings.HasPrefix(reply.ID, "back-"):
		categoryID := strings.TrimPrefix(reply.ID, "back-")
		if _, err := r.states.SetMenuContext(ctx, customerID, categoryID, ""); err != nil {
			return err
		}
		return r.menu.SendCategoryMenu(ctx, customerID, categoryID)
	}

	if _, ok := r.catalog.GetCategory(reply.ID); ok {
		if _, err := r.states.SetMenuContext(ctx, customerID, reply.ID, ""); err != nil {
			return err
		}
		return r.menu.SendCategoryMenu(ctx, customerID, reply.ID)
	}

	if err := r.messenger.SendText(ctx, customerID,
		"Thanks! Let us know what you'd like to do next."); err != nil {
		return err
	}
	return r.menu.SendNavigationButtons(ctx, customerID)
}

// addItem routes a selected menu item either into the cart directly or, for
// customizable items, into the customization flow.
func (r *RouterUseCase) addItem(ctx context.Context, customerID, itemID string) error {
	item, ok := r.catalog.GetItem(itemID)
	if !ok {
		if err := r.messenger.SendText(ctx, customerID,
			"Sorry, that item is not currently available."); err != nil {
			return err
		}
		return r.menu.SendNavigationButtons(ctx, customerID)
	}

	if item.HasCustomOptions {
		if _, err := r.states.Update(ctx, customerID, entities.StatePatch{
			Flow:          entities.FlowPtr(entities.FlowCustomizing),
			Step:          entities.StepPtr(entities.StepSelectingOptions),
			CurrentItemID: entities.StringPtr(itemID),
		}); err != nil {
			return err
		}
		return r.messenger.SendReplyButtons(ctx, customerID,
			fmt.Sprintf("*%s* - $%.2f\n\nWould you like to customize this item?", item.Title, item.Price),
			[]entities.Button{
				{ID: "add-instructions", Title: "Add Instructions"},
				{ID: "confirm-customization", Title: "Add As Is"},
			},
			nil,
		)
	}

	if _, err := r.cart.AddItem(ctx, customerID, itemID, 1); err != nil {
		return err
	}
	if err := r.messenger.SendText(ctx, customerID,
		fmt.Sprintf("%s added to your cart!", item.Title)); err != nil {
		return err
	}
	return r.menu.SendNavigationButtons(ctx, customerID)
}

// finishCustomization adds the pending item (with optional instructions) and
// returns the customer to browsing.
func (r *RouterUseCase) finishCustomization(ctx context.Context, customerID string, state entities.ConversationState, instructions string) error {
	if state.CurrentItemID == "" {
		if err := r.messenger.SendText(ctx, customerID, fallbackReply); err != nil {
			return err
		}
		return r.menu.SendNavigationButtons(ctx, customerID)
	}

	if _, err := r.cart.AddItem(ctx, customerID, state.CurrentItemID, 1); err != nil {
		return err
	}
	if instructions != "" {
		if _, err := r.cart.SetSpecialInstructions(ctx, customerID, state.CurrentItemID, instructions); err != nil {
			return err
		}
	}
	if _, err := r.states.Update(ctx, customerID, entities.StatePatch{
		Flow:          entities.FlowPtr(entities.FlowBrowsing),
		Step:          entities.StepPtr(entities.StepMainMenu),
		CurrentItemID: entities.StringPtr(""),
	}); err != nil {
		return err
	}
	return r.showCart(ctx, customerID)
}

func (r *RouterUseCase) showOrderStatus(ctx context.Context, customerID string, state entities.ConversationState) error {
	if state.CurrentOrderID == "" {
		return r.messenger.SendText(ctx, customerID,
			"You have no recent orders. Type *menu* to start one.")
	}
	order, err := r.checkout.GetOrder(ctx, state.CurrentOrderID)
	if err != nil {
		return r.messenger.SendText(ctx, customerID,
			"You have no recent orders. Type *menu* to start one.")
	}
	return r.messenger.SendText(ctx, customerID, fmt.Sprintf(
		"Order %s\nStatus: %s\nTotal: $%.2f", order.ID, order.Status, order.Total))
}

func (r *RouterUseCase) handleListReply(ctx context.Context, customerID string, state entities.ConversationState, reply entities.ReplyPayload) error {
	if strings.HasPrefix(reply.ID, "pay-") {
		return r.checkout.SelectPayment(ctx, customerID, reply.ID)
	}

	if sub, ok := r.catalog.GetSubcategory(reply.ID); ok {
		if _, err := r.states.SetMenuContext(ctx, customerID, state.CurrentCategory, sub.ID); err != nil {
			return err
		}
		return r.menu.SendItemList(ctx, customerID, sub.ID)
	}

	if _, ok := r.catalog.GetItem(reply.ID); ok {
		return r.addItem(ctx, customerID, reply.ID)
	}

	if _, ok := r.catalog.GetCategory(reply.ID); ok {
		if _, err := r.states.SetMenuContext(ctx, customerID, reply.ID, ""); err != nil {
			return err
		}
		return r.menu.SendCategoryMenu(ctx, customerID, reply.ID)
	}

	if err := r.messenger.SendText(ctx, customerID, fallbackReply); err != nil {
		return err
	}
	return r.menu.SendNavigationButtons(ctx, customerID)
}

func (r *RouterUseCase) handleImage(ctx context.Context, customerID string, state entities.ConversationState, image entities.ImagePayload) error {
	if state.Step == entities.StepWaitingForPaymentConfirmation {
		return r.checkout.ProcessPaymentProof(ctx, customerID, image.URL)
	}
	if err := r.messenger.SendText(ctx, customerID,
		"Thanks for the image! If you meant to order, please use the menu."); err != nil {
		return err
	}
	return r.menu.SendNavigationButtons(ctx, customerID)
}

func (r *RouterUseCase) handleLocation(ctx context.Context, customerID string, state entities.ConversationState, location entities.LocationPayload) error {
	if state.Flow == entities.FlowCheckout && state.Step == entities.StepLocationInput {
		return r.checkout.ProcessDeliveryLocation(ctx, customerID, location)
	}
	if err := r.messenger.SendText(ctx, customerID,
		"Thanks for sharing your location! To order delivery, start a checkout first."); err != nil {
		return err
	}
	return r.menu.SendNavigationButtons(ctx, customerID)
}
