package repository

import (
	"context"
	"testing"
	"time"

	"github.com/JeSappelleWilly/dokalbot/internal/domain/entities"
)

func TestMemoryStore_StateRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, found, err := store.Get(ctx, "wa-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Fatal("expected no state before save")
	}

	state := entities.DefaultConversationState()
	state.Flow = entities.FlowCheckout
	state.Step = entities.StepSelectingPayment
	if err := store.Save(ctx, "wa-1", state, time.Hour); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, found, err := store.Get(ctx, "wa-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found {
		t.Fatal("expected state after save")
	}
	if got.Flow != entities.FlowCheckout || got.Step != entities.StepSelectingPayment {
		t.Fatalf("unexpected state: %+v", got)
	}

	if err := store.Delete(ctx, "wa-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, found, _ = store.Get(ctx, "wa-1")
	if found {
		t.Fatal("expected no state after delete")
	}
}

func TestMemoryStore_ExpiryIsLazy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	current := time.Now()
	store.now = func() time.Time { return current }

	if err := store.Save(ctx, "wa-1", entities.DefaultConversationState(), time.Minute); err != nil {
		t.Fatalf("save: %v", err)
	}

	current = current.Add(2 * time.Minute)
	_, found, err := store.Get(ctx, "wa-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatal("expected expired state to read as absent")
	}
}

func TestMemoryStore_CartRoundTrip(t *testing.T) {
	ctx := context.Background()
	carts := NewMemoryStore().CartStore()

	cart := entities.EmptyCart()
	cart.Items = append(cart.Items, entities.CartItem{ID: "main1", Name: "Classic Burger", UnitPrice: 9.99, Quantity: 2})
	cart.Recompute(0.08)

	if err := carts.Save(ctx, "wa-1", cart, time.Hour); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, found, err := carts.Get(ctx, "wa-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found {
		t.Fatal("expected cart after save")
	}
	if len(got.Items) != 1 || got.Items[0].Quantity != 2 {
		t.Fatalf("unexpected cart: %+v", got)
	}
}

func TestMemoryStore_OrderStatusUpdate(t *testing.T) {
	ctx := context.Background()
	orders := NewMemoryStore().OrderStore()

	order := entities.Order{ID: "ORD-TEST1", Status: entities.OrderStatusPending, Total: 21.58}
	if err := orders.Save(ctx, order, 30*24*time.Hour); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := orders.UpdateStatus(ctx, "ORD-TEST1", entities.OrderStatusPaymentConfirmed); err != nil {
		t.Fatalf("update status: %v", err)
	}

	got, err := orders.GetByID(ctx, "ORD-TEST1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != entities.OrderStatusPaymentConfirmed {
		t.Fatalf("expected payment_confirmed, got %s", got.Status)
	}
	if got.Total != 21.58 {
		t.Fatalf("snapshot total changed: %v", got.Total)
	}
}

func TestMemoryStore_DedupMark(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	already, err := store.Mark(ctx, "wamid.1", time.Now(), time.Hour)
	if err != nil {
		t.Fatalf("mark: %v", err)
	}
	if already {
		t.Fatal("first mark must report not seen")
	}

	already, err = store.Mark(ctx, "wamid.1", time.Now(), time.Hour)
	if err != nil {
		t.Fatalf("mark: %v", err)
	}
	if !already {
		t.Fatal("second mark must report already seen")
	}

	seen, err := store.Seen(ctx, "wamid.1")
	if err != nil {
		t.Fatalf("seen: %v", err)
	}
	if !seen {
		t.Fatal("expected seen after mark")
	}
}
