package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JeSappelleWilly/dokalbot/internal/adapter/persistence/repository"
	"github.com/JeSappelleWilly/dokalbot/internal/domain/entities"
)

func newStateUseCase() *ConversationStateUseCase {
	return NewConversationStateUseCase(repository.NewMemoryStore(), 24*time.Hour)
}

func TestConversationStateUseCase_Get(t *testing.T) {
	ctx := context.Background()
	uc := newStateUseCase()

	state, err := uc.Get(ctx, testCustomer)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if state.Flow != entities.FlowBrowsing || state.Step != entities.StepMainMenu {
		t.Fatalf("expected default browsing state, got %+v", state)
	}
}

func TestConversationStateUseCase_Update(t *testing.T) {
	ctx := context.Background()
	uc := newStateUseCase()

	t.Run("shallow merge", func(t *testing.T) {
		if _, err := uc.Update(ctx, testCustomer, entities.StatePatch{
			CurrentCategory: entities.StringPtr("mains"),
		}); err != nil {
			t.Fatalf("update: %v", err)
		}

		state, err := uc.Update(ctx, testCustomer, entities.StatePatch{
			Flow: entities.FlowPtr(entities.FlowCheckout),
			Step: entities.StepPtr(entities.StepSelectingDeliveryType),
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if state.CurrentCategory != "mains" {
			t.Fatalf("unpatched field lost: %+v", state)
		}
		if state.Flow != entities.FlowCheckout {
			t.Fatalf("patched field not applied: %+v", state)
		}
	})

	t.Run("rejects a step outside the resulting flow", func(t *testing.T) {
		uc := newStateUseCase()
		if _, err := uc.SetMenuContext(ctx, testCustomer, "mains", ""); err != nil {
			t.Fatalf("set menu context: %v", err)
		}

		_, err := uc.Update(ctx, testCustomer, entities.StatePatch{
			Step: entities.StepPtr(entities.StepSelectingPayment),
		})
		if !errors.Is(err, ErrInvalidStep) {
			t.Fatalf("expected ErrInvalidStep, got %v", err)
		}

		state, err := uc.Get(ctx, testCustomer)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if state.Step != entities.StepCategory {
			t.Fatalf("rejected patch was persisted: %+v", state)
		}
	})

	t.Run("stamps last interaction", func(t *testing.T) {
		fixed := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return fixed }

		state, err := uc.Update(ctx, testCustomer, entities.StatePatch{})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if !state.LastInteractionAt.Equal(fixed) {
			t.Fatalf("last interaction = %v", state.LastInteractionAt)
		}
	})
}

func TestConversationStateUseCase_Reset(t *testing.T) {
	ctx := context.Background()
	uc := newStateUseCase()

	if _, err := uc.SetCheckoutInfo(ctx, testCustomer, entities.DeliveryTypeDelivery, "Av. Paulista, 1000"); err != nil {
		t.Fatalf("set checkout info: %v", err)
	}

	state, err := uc.Reset(ctx, testCustomer)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if state.Flow != entities.FlowBrowsing || state.Step != entities.StepMainMenu {
		t.Fatalf("expected default state, got %+v", state)
	}
	if state.DeliveryAddress != "" || state.DeliveryType != "" {
		t.Fatalf("checkout context survived reset: %+v", state)
	}

	persisted, err := uc.Get(ctx, testCustomer)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if persisted.DeliveryAddress != "" {
		t.Fatalf("reset not persisted: %+v", persisted)
	}
}

func TestConversationStateUseCase_SetMenuContext(t *testing.T) {
	ctx := context.Background()
	uc := newStateUseCase()

	state, err := uc.SetMenuContext(ctx, testCustomer, "mains", "")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if state.Step != entities.StepCategory {
		t.Fatalf("category-only should land on category step, got %s", state.Step)
	}

	state, err = uc.SetMenuContext(ctx, testCustomer, "mains", "grill")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if state.Step != entities.StepItemList {
		t.Fatalf("subcategory should land on item list, got %s", state.Step)
	}
	if state.CurrentSubcategory != "grill" {
		t.Fatalf("subcategory not stored: %+v", state)
	}
}

func TestConversationStateUseCase_SetCheckoutInfo(t *testing.T) {
	ctx := context.Background()
	uc := newStateUseCase()

	t.Run("pickup goes straight to payment", func(t *testing.T) {
		state, err := uc.SetCheckoutInfo(ctx, testCustomer, entities.DeliveryTypePickup, "")
		if err != nil {
			t.Fatalf("set: %v", err)
		}
		if state.Step != entities.StepSelectingPayment {
			t.Fatalf("step = %s", state.Step)
		}
	})

	t.Run("delivery without address waits for location", func(t *testing.T) {
		state, err := uc.SetCheckoutInfo(ctx, testCustomer, entities.DeliveryTypeDelivery, "")
		if err != nil {
			t.Fatalf("set: %v", err)
		}
		if state.Step != entities.StepLocationInput {
			t.Fatalf("step = %s", state.Step)
		}
	})

	t.Run("delivery with address advances to payment", func(t *testing.T) {
		state, err := uc.SetCheckoutInfo(ctx, testCustomer, entities.DeliveryTypeDelivery, "Av. Paulista, 1000")
		if err != nil {
			t.Fatalf("set: %v", err)
		}
		if state.Step != entities.StepSelectingPayment {
			t.Fatalf("step = %s", state.Step)
		}
		if state.DeliveryAddress != "Av. Paulista, 1000" {
			t.Fatalf("address not stored: %+v", state)
		}
	})
}
