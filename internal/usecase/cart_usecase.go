package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/JeSappelleWilly/dokalbot/internal/domain/entities"
	"github.com/JeSappelleWilly/dokalbot/internal/usecase/interfaces"
)

var ErrItemNotFound = errors.New("item not found in catalog")

// DiscountResult reports a promo code application. An unknown or duplicate
// code is a non-error: Success=false with an unchanged cart.
type DiscountResult struct {
	Success bool
	Amount  float64
}

// discountRule is one entry of the fixed promo catalog.
type discountRule struct {
	Type  string
	Value float64
}

var discountRules = map[string]discountRule{
	"WELCOME10": {Type: entities.DiscountTypePercentage, Value: 10},
	"FLAT5":     {Type: entities.DiscountTypeFixed, Value: 5},
}

// ICartUseCase owns a customer's cart. Every mutating operation recomputes
// the derived totals and persists with a refreshed sliding expiry.
type ICartUseCase interface {
	GetCart(ctx context.Context, customerID string) (entities.Cart, error)
	AddItem(ctx context.Context, customerID, itemID string, quantity int) (entities.Cart, error)
	RemoveItem(ctx context.Context, customerID, itemID string) (entities.Cart, error)
	UpdateQuantity(ctx context.Context, customerID, itemID string, quantity int) (entities.Cart, error)
	SetSpecialInstructions(ctx context.Context, customerID, itemID, instructions string) (entities.Cart, error)
	ApplyDiscount(ctx context.Context, customerID, code string) (DiscountResult, error)
	Clear(ctx context.Context, customerID string) error
	Summarize(ctx context.Context, customerID string) (entities.CartSummary, error)
}

type CartUseCase struct {
	repo    interfaces.ICartRepository
	catalog interfaces.ICatalog
	taxRate float64
	ttl     time.Duration
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(repo interfaces.ICartRepository, catalog interfaces.ICatalog, taxRate float64, ttl time.Duration) *CartUseCase {
	return &CartUseCase{repo: repo, catalog: catalog, taxRate: taxRate, ttl: ttl}
}

// GetCart returns the persisted cart, or an empty cart when none exists, so
// callers can render "cart is empty" without nil checks.
func (u *CartUseCase) GetCart(ctx context.Context, customerID string) (entities.Cart, error) {
	cart, found, err := u.repo.Get(ctx, customerID)
	if err != nil {
		log.Error().Err(err).Str("customer_id", customerID).Msg("failed loading cart")
		return entities.Cart{}, err
	}
	if !found {
		return entities.EmptyCart(), nil
	}
	return cart, nil
}

func (u *CartUseCase) save(ctx context.Context, customerID string, cart entities.Cart) error {
	if err := u.repo.Save(ctx, customerID, cart, u.ttl); err != nil {
		log.Error().Err(err).Str("customer_id", customerID).Msg("failed saving cart")
		return err
	}
	return nil
}

// AddItem resolves the item against the catalog and either increments the
// existing line's quantity or appends a new line.
func (u *CartUseCase) AddItem(ctx context.Context, customerID, itemID string, quantity int) (entities.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	menuItem, ok := u.catalog.GetItem(itemID)
	if !ok {
		return entities.Cart{}, ErrItemNotFound
	}

	cart, err := u.GetCart(ctx, customerID)
	if err != nil {
		return entities.Cart{}, err
	}

	if i := cart.ItemIndex(itemID); i >= 0 {
		cart.Items[i].Quantity += quantity
	} else {
		cart.Items = append(cart.Items, entities.CartItem{
			ID:        itemID,
			Name:      menuItem.Title,
			UnitPrice: menuItem.Price,
			Quantity:  quantity,
		})
	}

	cart.Recompute(u.taxRate)
	if err := u.save(ctx, customerID, cart); err != nil {
		return entities.Cart{}, err
	}
	return cart, nil
}

// RemoveItem filters the line out. Removing an absent item is a no-op, not an
// error.
func (u *CartUseCase) RemoveItem(ctx context.Context, customerID, itemID string) (entities.Cart, error) {
	cart, err := u.GetCart(ctx, customerID)
	if err != nil {
		return entities.Cart{}, err
	}

	kept := cart.Items[:0]
	for _, it := range cart.Items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	cart.Items = kept

	cart.Recompute(u.taxRate)
	if err := u.save(ctx, customerID, cart); err != nil {
		return entities.Cart{}, err
	}
	return cart, nil
}

func (u *CartUseCase) UpdateQuantity(ctx context.Context, customerID, itemID string, quantity int) (entities.Cart, error) {
	if quantity <= 0 {
		return u.RemoveItem(ctx, customerID, itemID)
	}

	cart, err := u.GetCart(ctx, customerID)
	if err != nil {
		return entities.Cart{}, err
	}

	i := cart.ItemIndex(itemID)
	if i < 0 {
		return cart, nil
	}
	cart.Items[i].Quantity = quantity

	cart.Recompute(u.taxRate)
	if err := u.save(ctx, customerID, cart); err != nil {
		return entities.Cart{}, err
	}
	return cart, nil
}

// SetSpecialInstructions attaches free text to one line item. Totals are
// unaffected, so no recompute happens.
func (u *CartUseCase) SetSpecialInstructions(ctx context.Context, customerID, itemID, instructions string) (entities.Cart, error) {
	cart, err := u.GetCart(ctx, customerID)
	if err != nil {
		return entities.Cart{}, err
	}

	i := cart.ItemIndex(itemID)
	if i < 0 {
		return cart, nil
	}
	cart.Items[i].SpecialInstructions = instructions

	if err := u.save(ctx, customerID, cart); err != nil {
		return entities.Cart{}, err
	}
	return cart, nil
}

// ApplyDiscount validates the code against the fixed rule set. A code already
// present in the cart is rejected rather than stacked.
func (u *CartUseCase) ApplyDiscount(ctx context.Context, customerID, code string) (DiscountResult, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	rule, ok := discountRules[code]
	if !ok {
		return DiscountResult{}, nil
	}

	cart, err := u.GetCart(ctx, customerID)
	if err != nil {
		return DiscountResult{}, err
	}
	if cart.HasDiscount(code) {
		log.Debug().Str("customer_id", customerID).Str("code", code).Msg("promo code already applied")
		return DiscountResult{}, nil
	}

	discount := entities.Discount{Code: code, Type: rule.Type, Value: rule.Value}
	switch rule.Type {
	case entities.DiscountTypePercentage:
		discount.Amount = cart.Subtotal * rule.Value / 100
	case entities.DiscountTypeFixed:
		discount.Amount = rule.Value
	}

	cart.Discounts = append(cart.Discounts, discount)
	cart.Recompute(u.taxRate)

	if err := u.save(ctx, customerID, cart); err != nil {
		return DiscountResult{}, err
	}
	return DiscountResult{Success: true, Amount: discount.Amount}, nil
}

// Clear deletes the cart record entirely; the key itself is removed.
func (u *CartUseCase) Clear(ctx context.Context, customerID string) error {
	if err := u.repo.Delete(ctx, customerID); err != nil {
		log.Error().Err(err).Str("customer_id", customerID).Msg("failed clearing cart")
		return err
	}
	return nil
}

// Summarize produces a rendering-ready view without mutating anything.
func (u *CartUseCase) Summarize(ctx context.Context, customerID string) (entities.CartSummary, error) {
	cart, err := u.GetCart(ctx, customerID)
	if err != nil {
		return entities.CartSummary{}, err
	}

	summary := entities.CartSummary{
		Subtotal:  cart.Subtotal,
		Tax:       cart.Tax,
		Discounts: cart.Discounts,
		Total:     cart.Total,
	}
	for _, it := range cart.Items {
		summary.Lines = append(summary.Lines, entities.SummaryLine{
			Name:                it.Name,
			Quantity:            it.Quantity,
			LineTotal:           it.LineTotal(),
			SpecialInstructions: it.SpecialInstructions,
		})
	}
	return summary, nil
}
