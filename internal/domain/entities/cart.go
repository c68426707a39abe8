package entities

// CartItem is one line of a customer's cart. Name and UnitPrice are sourced
// from the catalog when the item is added.
type CartItem struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	UnitPrice           float64  `json:"unit_price"`
	Quantity            int      `json:"quantity"`
	SpecialInstructions string   `json:"special_instructions,omitempty"`
	Customizations      []string `json:"customizations,omitempty"`
}

func (i CartItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// Discount records one applied promo code.
type Discount struct {
	Code   string  `json:"code"`
	Type   string  `json:"type"`
	Value  float64 `json:"value"`
	Amount float64 `json:"amount"`
}

// Cart holds a customer's pending selections. Subtotal, Tax and Total are
// derived values; they must never be patched in place, only recomputed via
// Recompute after any change to Items or Discounts.
type Cart struct {
	Items     []CartItem `json:"items"`
	Discounts []Discount `json:"discounts"`
	Subtotal  float64    `json:"subtotal"`
	Tax       float64    `json:"tax"`
	Total     float64    `json:"total"`
}

func EmptyCart() Cart {
	return Cart{Items: []CartItem{}, Discounts: []Discount{}}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemIndex returns the position of the item with the given id, or -1.
func (c *Cart) ItemIndex(itemID string) int {
	for i, it := range c.Items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}

func (c *Cart) HasDiscount(code string) bool {
	for _, d := range c.Discounts {
		if d.Code == code {
			return true
		}
	}
	return false
}

// Recompute refreshes the derived totals. Percentage discounts are re-derived
// from the current subtotal so the invariant total == subtotal + tax - Σamount
// holds after item changes too.
func (c *Cart) Recompute(taxRate float64) {
	c.Subtotal = 0
	for _, it := range c.Items {
		c.Subtotal += it.LineTotal()
	}
	c.Tax = c.Subtotal * taxRate

	var totalDiscount float64
	for i := range c.Discounts {
		if c.Discounts[i].Type == DiscountTypePercentage {
			c.Discounts[i].Amount = c.Subtotal * c.Discounts[i].Value / 100
		}
		totalDiscount += c.Discounts[i].Amount
	}
	c.Total = c.Subtotal + c.Tax - totalDiscount
}

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// CartSummary is a rendering-ready view of a cart for the messenger layer.
type CartSummary struct {
	Lines     []SummaryLine `json:"lines"`
	Subtotal  float64       `json:"subtotal"`
	Tax       float64       `json:"tax"`
	Discounts []Discount    `json:"discounts"`
	Total     float64       `json:"total"`
}

type SummaryLine struct {
	Name                string  `json:"name"`
	Quantity            int     `json:"quantity"`
	LineTotal           float64 `json:"line_total"`
	SpecialInstructions string  `json:"special_instructions,omitempty"`
}
