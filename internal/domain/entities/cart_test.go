package entities

import (
	"math"
	"math/rand"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCart_Recompute(t *testing.T) {
	t.Run("totals from items", func(t *testing.T) {
		cart := EmptyCart()
		cart.Items = []CartItem{
			{ID: "a", UnitPrice: 10, Quantity: 2},
			{ID: "b", UnitPrice: 5.5, Quantity: 1},
		}
		cart.Recompute(0.08)

		if !almostEqual(cart.Subtotal, 25.5) {
			t.Fatalf("subtotal = %v", cart.Subtotal)
		}
		if !almostEqual(cart.Tax, 2.04) {
			t.Fatalf("tax = %v", cart.Tax)
		}
		if !almostEqual(cart.Total, 27.54) {
			t.Fatalf("total = %v", cart.Total)
		}
	})

	t.Run("percentage discount tracks subtotal changes", func(t *testing.T) {
		cart := EmptyCart()
		cart.Items = []CartItem{{ID: "a", UnitPrice: 100, Quantity: 1}}
		cart.Discounts = []Discount{{Code: "WELCOME10", Type: DiscountTypePercentage, Value: 10}}
		cart.Recompute(0)

		if !almostEqual(cart.Discounts[0].Amount, 10) {
			t.Fatalf("amount = %v", cart.Discounts[0].Amount)
		}

		cart.Items = append(cart.Items, CartItem{ID: "b", UnitPrice: 100, Quantity: 1})
		cart.Recompute(0)

		if !almostEqual(cart.Discounts[0].Amount, 20) {
			t.Fatalf("amount after growth = %v", cart.Discounts[0].Amount)
		}
		if !almostEqual(cart.Total, 180) {
			t.Fatalf("total = %v", cart.Total)
		}
	})

	t.Run("fixed discount amount is stable", func(t *testing.T) {
		cart := EmptyCart()
		cart.Items = []CartItem{{ID: "a", UnitPrice: 50, Quantity: 1}}
		cart.Discounts = []Discount{{Code: "FLAT5", Type: DiscountTypeFixed, Value: 5, Amount: 5}}
		cart.Recompute(0.08)

		if !almostEqual(cart.Discounts[0].Amount, 5) {
			t.Fatalf("amount = %v", cart.Discounts[0].Amount)
		}
		if !almostEqual(cart.Total, 50+4-5) {
			t.Fatalf("total = %v", cart.Total)
		}
	})

	t.Run("invariant holds under random mutation", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		cart := EmptyCart()

		for step := 0; step < 200; step++ {
			switch rng.Intn(3) {
			case 0:
				cart.Items = append(cart.Items, CartItem{
					ID:        "item",
					UnitPrice: float64(rng.Intn(5000)) / 100,
					Quantity:  1 + rng.Intn(5),
				})
			case 1:
				if len(cart.Items) > 0 {
					cart.Items = cart.Items[:len(cart.Items)-1]
				}
			case 2:
				if len(cart.Discounts) == 0 {
					cart.Discounts = append(cart.Discounts, Discount{
						Code: "WELCOME10", Type: DiscountTypePercentage, Value: 10,
					})
				}
			}
			cart.Recompute(0.08)

			var sum float64
			for _, d := range cart.Discounts {
				sum += d.Amount
			}
			if !almostEqual(cart.Total, cart.Subtotal+cart.Tax-sum) {
				t.Fatalf("step %d: total %v != subtotal %v + tax %v - discounts %v",
					step, cart.Total, cart.Subtotal, cart.Tax, sum)
			}
		}
	})
}

func TestCart_Helpers(t *testing.T) {
	cart := EmptyCart()
	if !cart.IsEmpty() {
		t.Fatal("new cart must be empty")
	}
	if cart.ItemIndex("x") != -1 {
		t.Fatal("expected -1 for absent item")
	}

	cart.Items = append(cart.Items, CartItem{ID: "x", UnitPrice: 1, Quantity: 3})
	if cart.ItemIndex("x") != 0 {
		t.Fatal("expected index 0")
	}
	if got := cart.Items[0].LineTotal(); !almostEqual(got, 3) {
		t.Fatalf("line total = %v", got)
	}

	cart.Discounts = append(cart.Discounts, Discount{Code: "FLAT5"})
	if !cart.HasDiscount("FLAT5") {
		t.Fatal("expected discount present")
	}
	if cart.HasDiscount("WELCOME10") {
		t.Fatal("unexpected discount")
	}
}
