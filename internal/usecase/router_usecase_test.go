package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/JeSappelleWilly/dokalbot/internal/adapter/persistence/repository"
	"github.com/JeSappelleWilly/dokalbot/internal/domain/entities"
	"github.com/JeSappelleWilly/dokalbot/internal/infrastructure/catalog"
	"github.com/JeSappelleWilly/dokalbot/internal/usecase/interfaces"
	mock_interfaces "github.com/JeSappelleWilly/dokalbot/internal/usecase/interfaces/mocks"
)

type routerFixture struct {
	router    *RouterUseCase
	states    *ConversationStateUseCase
	cart      *CartUseCase
	orders    *repository.MemoryOrderStore
	messenger *mock_interfaces.MockIMessenger
	gateway   *mock_interfaces.MockIPaymentGateway
	extractor *mock_interfaces.MockIReceiptExtractor
	eventSeq  int
}

// newRouterFixture wires the full conversational stack over in-memory stores
// with a permissive messenger, so tests assert persisted effects rather than
// outbound message text.
func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	store := repository.NewMemoryStore()
	menuCatalog := catalog.NewStaticCatalog()
	states := NewConversationStateUseCase(store, 24*time.Hour)
	cart := NewCartUseCase(store.CartStore(), menuCatalog, 0.08, 24*time.Hour)
	orders := store.OrderStore()
	guard := NewDuplicateGuard(store, time.Hour)

	messenger := mock_interfaces.NewMockIMessenger(ctrl)
	messenger.EXPECT().SendText(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	messenger.EXPECT().SendReplyButtons(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	messenger.EXPECT().SendList(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	messenger.EXPECT().RequestLocation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	messenger.EXPECT().SendTemplate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	extractor := mock_interfaces.NewMockIReceiptExtractor(ctrl)
	publisher := mock_interfaces.NewMockIOrderEventPublisher(ctrl)
	publisher.EXPECT().PublishOrderConfirmed(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	checkout := NewCheckoutUseCase(states, cart, orders, messenger, gateway, extractor, publisher, 30*24*time.Hour)
	checkout.jitter = func(int) int { return 0 }

	menu := NewMenuUseCase(menuCatalog, messenger)
	router := NewRouterUseCase(guard, states, cart, checkout, menu, menuCatalog, messenger)

	return &routerFixture{
		router:    router,
		states:    states,
		cart:      cart,
		orders:    orders,
		messenger: messenger,
		gateway:   gateway,
		extractor: extractor,
	}
}

func (f *routerFixture) event(from string) entities.InboundEvent {
	f.eventSeq++
	return entities.InboundEvent{
		ID:   fmt.Sprintf("wamid.test.%d", f.eventSeq),
		From: from,
	}
}

func (f *routerFixture) text(body string) entities.InboundEvent {
	event := f.event(testCustomer)
	event.Text = &entities.TextPayload{Body: body}
	return event
}

func (f *routerFixture) button(id string) entities.InboundEvent {
	event := f.event(testCustomer)
	event.ButtonReply = &entities.ReplyPayload{ID: id}
	return event
}

func (f *routerFixture) list(id string) entities.InboundEvent {
	event := f.event(testCustomer)
	event.ListReply = &entities.ReplyPayload{ID: id}
	return event
}

func (f *routerFixture) handle(t *testing.T, event entities.InboundEvent) {
	t.Helper()
	if err := f.router.HandleEvent(context.Background(), event); err != nil {
		t.Fatalf("handle event: %v", err)
	}
}

func (f *routerFixture) state(t *testing.T) entities.ConversationState {
	t.Helper()
	state, err := f.states.Get(context.Background(), testCustomer)
	if err != nil {
		t.Fatalf("get state: %v", err)
	}
	return state
}

func (f *routerFixture) cartOf(t *testing.T) entities.Cart {
	t.Helper()
	cart, err := f.cart.GetCart(context.Background(), testCustomer)
	if err != nil {
		t.Fatalf("get cart: %v", err)
	}
	return cart
}

func TestRouterUseCase_Deduplication(t *testing.T) {
	f := newRouterFixture(t)

	event := f.list("pasta-1")
	f.handle(t, event)
	f.handle(t, event) // same id, must be a no-op

	cart := f.cartOf(t)
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 1 {
		t.Fatalf("replayed event re-applied: %+v", cart.Items)
	}

	// distinct id with same payload goes through
	f.handle(t, f.list("pasta-1"))
	if got := f.cartOf(t).Items[0].Quantity; got != 2 {
		t.Fatalf("distinct event dropped, quantity = %d", got)
	}
}

func TestRouterUseCase_TextKeywords(t *testing.T) {
	t.Run("menu resets mid-checkout", func(t *testing.T) {
		f := newRouterFixture(t)
		f.handle(t, f.list("pasta-1"))
		f.handle(t, f.text("checkout"))
		if got := f.state(t).Flow; got != entities.FlowCheckout {
			t.Fatalf("flow = %s", got)
		}

		f.handle(t, f.text("  MENU "))
		state := f.state(t)
		if state.Flow != entities.FlowBrowsing || state.Step != entities.StepMainMenu {
			t.Fatalf("menu keyword did not reset: %+v", state)
		}
	})

	t.Run("checkout keyword starts the flow", func(t *testing.T) {
		f := newRouterFixture(t)
		f.handle(t, f.list("pasta-1"))
		f.handle(t, f.text("checkout"))
		if got := f.state(t).Step; got != entities.StepSelectingDeliveryType {
			t.Fatalf("step = %s", got)
		}
	})

	t.Run("cancel keeps the cart", func(t *testing.T) {
		f := newRouterFixture(t)
		f.handle(t, f.list("pasta-1"))
		f.handle(t, f.text("checkout"))
		f.handle(t, f.text("cancel"))

		if got := f.state(t).Step; got != entities.StepMainMenu {
			t.Fatalf("step = %s", got)
		}
		cart := f.cartOf(t)
		if cart.IsEmpty() {
			t.Fatal("cancel must not clear the cart")
		}
	})

	t.Run("fallback leaves state untouched", func(t *testing.T) {
		f := newRouterFixture(t)
		f.handle(t, f.text("gibberish input"))
		state := f.state(t)
		if state.Flow != entities.FlowBrowsing || state.Step != entities.StepMainMenu {
			t.Fatalf("fallback changed state: %+v", state)
		}
	})
}

func TestRouterUseCase_PromoText(t *testing.T) {
	f := newRouterFixture(t)
	f.handle(t, f.list("pasta-1"))

	f.handle(t, f.text("promo WELCOME10"))
	cart := f.cartOf(t)
	if len(cart.Discounts) != 1 {
		t.Fatalf("promo not applied: %+v", cart.Discounts)
	}

	// second spelling of the prefix also parses; the duplicate code is
	// rejected by the cart so nothing stacks
	f.handle(t, f.text("discount welcome10"))
	if got := len(f.cartOf(t).Discounts); got != 1 {
		t.Fatalf("discount stacked: %d", got)
	}
}

func TestRouterUseCase_AddressText(t *testing.T) {
	f := newRouterFixture(t)
	f.handle(t, f.list("pasta-1"))
	f.handle(t, f.text("checkout"))
	f.handle(t, f.button("delivery"))
	if got := f.state(t).Step; got != entities.StepLocationInput {
		t.Fatalf("step = %s", got)
	}

	f.handle(t, f.text("Av. Paulista, 1000"))
	state := f.state(t)
	if state.Step != entities.StepSelectingPayment {
		t.Fatalf("address not routed: %+v", state)
	}
	if state.DeliveryAddress != "Av. Paulista, 1000" {
		t.Fatalf("address = %q", state.DeliveryAddress)
	}
}

func TestRouterUseCase_Customization(t *testing.T) {
	t.Run("typed instructions", func(t *testing.T) {
		f := newRouterFixture(t)

		// grill-1 is customizable: selecting it parks the item instead of
		// adding it straight to the cart
		f.handle(t, f.list("grill-1"))
		state := f.state(t)
		if state.Flow != entities.FlowCustomizing || state.CurrentItemID != "grill-1" {
			t.Fatalf("item not parked for customization: %+v", state)
		}
		parked := f.cartOf(t)
		if !parked.IsEmpty() {
			t.Fatal("customizable item added prematurely")
		}

		f.handle(t, f.button("add-instructions"))
		if got := f.state(t).Step; got != entities.StepSpecialInstructions {
			t.Fatalf("step = %s", got)
		}

		f.handle(t, f.text("no onions, please"))
		cart := f.cartOf(t)
		if len(cart.Items) != 1 || cart.Items[0].ID != "grill-1" {
			t.Fatalf("item not added: %+v", cart.Items)
		}
		if cart.Items[0].SpecialInstructions != "no onions, please" {
			t.Fatalf("instructions lost: %+v", cart.Items[0])
		}
		if got := f.state(t).Flow; got != entities.FlowBrowsing {
			t.Fatalf("flow not restored: %s", got)
		}
	})

	t.Run("add as is", func(t *testing.T) {
		f := newRouterFixture(t)
		f.handle(t, f.list("grill-1"))
		f.handle(t, f.button("confirm-customization"))

		cart := f.cartOf(t)
		if len(cart.Items) != 1 || cart.Items[0].SpecialInstructions != "" {
			t.Fatalf("unexpected cart: %+v", cart.Items)
		}
		if got := f.state(t).CurrentItemID; got != "" {
			t.Fatalf("pending item not cleared: %q", got)
		}
	})
}

func TestRouterUseCase_ButtonRouting(t *testing.T) {
	t.Run("category button opens the category", func(t *testing.T) {
		f := newRouterFixture(t)
		f.handle(t, f.button("mains"))
		state := f.state(t)
		if state.CurrentCategory != "mains" || state.Step != entities.StepCategory {
			t.Fatalf("category not entered: %+v", state)
		}
	})

	t.Run("remove prefix drops the line", func(t *testing.T) {
		f := newRouterFixture(t)
		f.handle(t, f.list("pasta-1"))
		f.handle(t, f.list("dessert-1"))

		f.handle(t, f.button("remove-pasta-1"))
		cart := f.cartOf(t)
		if len(cart.Items) != 1 || cart.Items[0].ID != "dessert-1" {
			t.Fatalf("unexpected cart: %+v", cart.Items)
		}
	})

	t.Run("back prefix returns to the category", func(t *testing.T) {
		f := newRouterFixture(t)
		f.handle(t, f.button("back-mains"))
		state := f.state(t)
		if state.CurrentCategory != "mains" || state.CurrentSubcategory != "" {
			t.Fatalf("back navigation failed: %+v", state)
		}
	})

	t.Run("pickup then confirm completes a cash order", func(t *testing.T) {
		f := newRouterFixture(t)
		f.handle(t, f.list("pasta-1"))
		f.handle(t, f.text("checkout"))
		f.handle(t, f.button("pickup"))
		if got := f.state(t).Step; got != entities.StepSelectingPayment {
			t.Fatalf("step = %s", got)
		}

		f.handle(t, f.list("pay-cash"))
		state := f.state(t)
		if state.PaymentMethod != entities.PaymentMethodCash || state.Step != entities.StepConfirmingOrder {
			t.Fatalf("payment not selected: %+v", state)
		}

		f.handle(t, f.button("confirm-order"))
		cart := f.cartOf(t)
		if !cart.IsEmpty() {
			t.Fatal("cart not cleared after confirmation")
		}
		if got := f.state(t).Step; got != entities.StepMainMenu {
			t.Fatalf("state not reset: %s", got)
		}
	})
}

func TestRouterUseCase_ListRouting(t *testing.T) {
	f := newRouterFixture(t)

	// subcategory rows are resolved before items
	f.handle(t, f.button("mains"))
	f.handle(t, f.list("pasta"))
	state := f.state(t)
	if state.CurrentSubcategory != "pasta" || state.Step != entities.StepItemList {
		t.Fatalf("subcategory not entered: %+v", state)
	}

	// plain item row lands in the cart
	f.handle(t, f.list("pasta-1"))
	if len(f.cartOf(t).Items) != 1 {
		t.Fatalf("item row not added: %+v", f.cartOf(t).Items)
	}
}

func TestRouterUseCase_ImageRouting(t *testing.T) {
	t.Run("proof image while parked confirms the order", func(t *testing.T) {
		f := newRouterFixture(t)
		f.handle(t, f.list("pasta-1"))
		f.handle(t, f.text("checkout"))
		f.handle(t, f.button("pickup"))
		f.handle(t, f.list("pay-mobile-payment"))
		f.handle(t, f.button("confirm-order"))

		state := f.state(t)
		if state.Step != entities.StepWaitingForPaymentConfirmation {
			t.Fatalf("step = %s", state.Step)
		}
		orderID := state.CurrentOrderID

		f.extractor.EXPECT().Extract(gomock.Any(), "https://img.example/receipt.jpg").
			Return(interfaces.ReceiptData{Amount: 17.27, Reference: "TX-9"}, nil)

		event := f.event(testCustomer)
		event.Image = &entities.ImagePayload{URL: "https://img.example/receipt.jpg"}
		f.handle(t, event)

		order, err := f.orders.GetByID(context.Background(), orderID)
		if err != nil {
			t.Fatalf("get order: %v", err)
		}
		if order.Status != entities.OrderStatusPaymentConfirmed {
			t.Fatalf("status = %s", order.Status)
		}
	})

	t.Run("stray image is acknowledged only", func(t *testing.T) {
		f := newRouterFixture(t)
		event := f.event(testCustomer)
		event.Image = &entities.ImagePayload{URL: "https://img.example/cat.jpg"}
		f.handle(t, event)

		state := f.state(t)
		if state.Flow != entities.FlowBrowsing || state.Step != entities.StepMainMenu {
			t.Fatalf("stray image changed state: %+v", state)
		}
	})
}

func TestRouterUseCase_LocationRouting(t *testing.T) {
	f := newRouterFixture(t)
	f.handle(t, f.list("pasta-1"))
	f.handle(t, f.text("checkout"))
	f.handle(t, f.button("delivery"))

	event := f.event(testCustomer)
	event.Location = &entities.LocationPayload{
		Latitude: -23.55, Longitude: -46.63, Address: "Av. Paulista, 1000",
	}
	f.handle(t, event)

	state := f.state(t)
	if state.Step != entities.StepSelectingPayment {
		t.Fatalf("location not routed: %+v", state)
	}
	if state.DeliveryAddress != "Av. Paulista, 1000" {
		t.Fatalf("address = %q", state.DeliveryAddress)
	}
}

func TestRouterUseCase_EmptyPayload(t *testing.T) {
	f := newRouterFixture(t)
	f.handle(t, f.event(testCustomer))

	state := f.state(t)
	if state.Flow != entities.FlowBrowsing {
		t.Fatalf("empty payload changed state: %+v", state)
	}
}

// A handler failure must never surface to the webhook: the router swallows it
// after apologizing, so the channel still gets its 200.
func TestRouterUseCase_RecoverOnHandlerError(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := repository.NewMemoryStore()
	menuCatalog := catalog.NewStaticCatalog()
	states := NewConversationStateUseCase(store, 24*time.Hour)
	cart := NewCartUseCase(store.CartStore(), menuCatalog, 0.08, 24*time.Hour)
	guard := NewDuplicateGuard(store, time.Hour)

	messenger := mock_interfaces.NewMockIMessenger(ctrl)
	// the welcome send blows up; the apology and navigation still go out
	messenger.EXPECT().SendReplyButtons(gomock.Any(), testCustomer, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("channel down"))
	messenger.EXPECT().SendText(gomock.Any(), testCustomer, gomock.Any()).Return(nil)
	messenger.EXPECT().SendReplyButtons(gomock.Any(), testCustomer, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	extractor := mock_interfaces.NewMockIReceiptExtractor(ctrl)
	publisher := mock_interfaces.NewMockIOrderEventPublisher(ctrl)
	checkout := NewCheckoutUseCase(states, cart, store.OrderStore(), messenger, gateway, extractor, publisher, time.Hour)
	menu := NewMenuUseCase(menuCatalog, messenger)
	router := NewRouterUseCase(guard, states, cart, checkout, menu, menuCatalog, messenger)

	event := entities.InboundEvent{
		ID:   "wamid.recover.1",
		From: testCustomer,
		Text: &entities.TextPayload{Body: "hello"},
	}
	if err := router.HandleEvent(context.Background(), event); err != nil {
		t.Fatalf("handler error leaked: %v", err)
	}
}
