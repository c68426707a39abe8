package usecase

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/JeSappelleWilly/dokalbot/internal/adapter/persistence/repository"
	"github.com/JeSappelleWilly/dokalbot/internal/infrastructure/catalog"
)

const testCustomer = "5511999999999"

func newCartUseCase() *CartUseCase {
	carts := repository.NewMemoryStore().CartStore()
	return NewCartUseCase(carts, catalog.NewStaticCatalog(), 0.08, 24*time.Hour)
}

func TestCartUseCase_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown item", func(t *testing.T) {
		uc := newCartUseCase()
		_, err := uc.AddItem(ctx, testCustomer, "no-such-item", 1)
		if !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("new line from catalog", func(t *testing.T) {
		uc := newCartUseCase()
		cart, err := uc.AddItem(ctx, testCustomer, "pasta-1", 1)
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if len(cart.Items) != 1 {
			t.Fatalf("expected 1 line, got %d", len(cart.Items))
		}
		line := cart.Items[0]
		if line.Name != "Spaghetti Bolognese" || line.UnitPrice != 15.99 {
			t.Fatalf("catalog data not copied: %+v", line)
		}
		if math.Abs(cart.Total-(15.99*1.08)) > 1e-9 {
			t.Fatalf("total = %v", cart.Total)
		}
	})

	t.Run("adding same item twice increments quantity", func(t *testing.T) {
		uc := newCartUseCase()
		if _, err := uc.AddItem(ctx, testCustomer, "pasta-1", 1); err != nil {
			t.Fatalf("add: %v", err)
		}
		cart, err := uc.AddItem(ctx, testCustomer, "pasta-1", 2)
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if len(cart.Items) != 1 {
			t.Fatalf("expected single line, got %d", len(cart.Items))
		}
		if cart.Items[0].Quantity != 3 {
			t.Fatalf("quantity = %d", cart.Items[0].Quantity)
		}
	})

	t.Run("zero quantity coerced to one", func(t *testing.T) {
		uc := newCartUseCase()
		cart, err := uc.AddItem(ctx, testCustomer, "pasta-1", 0)
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if cart.Items[0].Quantity != 1 {
			t.Fatalf("quantity = %d", cart.Items[0].Quantity)
		}
	})
}

func TestCartUseCase_RemoveItem(t *testing.T) {
	ctx := context.Background()
	uc := newCartUseCase()

	if _, err := uc.AddItem(ctx, testCustomer, "pasta-1", 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := uc.AddItem(ctx, testCustomer, "dessert-1", 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	cart, err := uc.RemoveItem(ctx, testCustomer, "pasta-1")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].ID != "dessert-1" {
		t.Fatalf("unexpected items: %+v", cart.Items)
	}
	if math.Abs(cart.Subtotal-7.99) > 1e-9 {
		t.Fatalf("subtotal not recomputed: %v", cart.Subtotal)
	}

	// removing an absent item is a no-op
	cart, err = uc.RemoveItem(ctx, testCustomer, "pasta-1")
	if err != nil {
		t.Fatalf("remove absent: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("no-op remove changed cart: %+v", cart.Items)
	}
}

func TestCartUseCase_UpdateQuantity(t *testing.T) {
	ctx := context.Background()
	uc := newCartUseCase()

	if _, err := uc.AddItem(ctx, testCustomer, "pasta-1", 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	cart, err := uc.UpdateQuantity(ctx, testCustomer, "pasta-1", 5)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if cart.Items[0].Quantity != 5 {
		t.Fatalf("quantity = %d", cart.Items[0].Quantity)
	}

	cart, err = uc.UpdateQuantity(ctx, testCustomer, "pasta-1", 0)
	if err != nil {
		t.Fatalf("update to zero: %v", err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("zero quantity should remove the line: %+v", cart.Items)
	}
}

func TestCartUseCase_ApplyDiscount(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown code", func(t *testing.T) {
		uc := newCartUseCase()
		result, err := uc.ApplyDiscount(ctx, testCustomer, "NOPE")
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if result.Success {
			t.Fatal("unknown code must not apply")
		}
	})

	t.Run("percentage code", func(t *testing.T) {
		uc := newCartUseCase()
		if _, err := uc.AddItem(ctx, testCustomer, "grill-1", 1); err != nil {
			t.Fatalf("add: %v", err)
		}
		result, err := uc.ApplyDiscount(ctx, testCustomer, "welcome10")
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if !result.Success {
			t.Fatal("expected success")
		}
		if math.Abs(result.Amount-2.899) > 1e-9 {
			t.Fatalf("amount = %v", result.Amount)
		}
	})

	t.Run("duplicate code rejected", func(t *testing.T) {
		uc := newCartUseCase()
		if _, err := uc.AddItem(ctx, testCustomer, "grill-1", 1); err != nil {
			t.Fatalf("add: %v", err)
		}
		if _, err := uc.ApplyDiscount(ctx, testCustomer, "WELCOME10"); err != nil {
			t.Fatalf("first apply: %v", err)
		}
		result, err := uc.ApplyDiscount(ctx, testCustomer, "WELCOME10")
		if err != nil {
			t.Fatalf("second apply: %v", err)
		}
		if result.Success {
			t.Fatal("duplicate must be rejected")
		}

		cart, err := uc.GetCart(ctx, testCustomer)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if len(cart.Discounts) != 1 {
			t.Fatalf("discount stacked: %+v", cart.Discounts)
		}
	})
}

func TestCartUseCase_ClearAndSummarize(t *testing.T) {
	ctx := context.Background()
	uc := newCartUseCase()

	if _, err := uc.AddItem(ctx, testCustomer, "pasta-1", 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := uc.SetSpecialInstructions(ctx, testCustomer, "pasta-1", "extra parmesan"); err != nil {
		t.Fatalf("instructions: %v", err)
	}

	summary, err := uc.Summarize(ctx, testCustomer)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if len(summary.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(summary.Lines))
	}
	if summary.Lines[0].SpecialInstructions != "extra parmesan" {
		t.Fatalf("instructions lost: %+v", summary.Lines[0])
	}
	if math.Abs(summary.Lines[0].LineTotal-31.98) > 1e-9 {
		t.Fatalf("line total = %v", summary.Lines[0].LineTotal)
	}

	if err := uc.Clear(ctx, testCustomer); err != nil {
		t.Fatalf("clear: %v", err)
	}
	cart, err := uc.GetCart(ctx, testCustomer)
	if err != nil {
		t.Fatalf("get after clear: %v", err)
	}
	if !cart.IsEmpty() {
		t.Fatalf("cart not cleared: %+v", cart)
	}
}
