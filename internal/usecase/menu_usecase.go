package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/JeSappelleWilly/dokalbot/internal/domain/entities"
	"github.com/JeSappelleWilly/dokalbot/internal/usecase/interfaces"
)

// MenuUseCase renders the browse surface: welcome, category/item lists, help
// and navigation affordances. It reads the catalog and writes to the
// messenger; it never touches carts or state.
type MenuUseCase struct {
	catalog   interfaces.ICatalog
	messenger interfaces.IMessenger
}

func NewMenuUseCase(catalog interfaces.ICatalog, messenger interfaces.IMessenger) *MenuUseCase {
	return &MenuUseCase{catalog: catalog, messenger: messenger}
}

func (u *MenuUseCase) SendWelcome(ctx context.Context, to string) error {
	return u.messenger.SendReplyButtons(ctx, to,
		"Welcome to our restaurant! How can we help you today?",
		[]entities.Button{
			{ID: "main-menu", Title: "Browse Menu"},
			{ID: "specials", Title: "Today's Specials"},
			{ID: "help", Title: "Get Assistance"},
		},
		&entities.SendOptions{FooterText: "We're happy to serve you!"},
	)
}

func (u *MenuUseCase) SendMainMenu(ctx context.Context, to string) error {
	var rows []entities.ListRow
	for _, cat := range u.catalog.Categories() {
		rows = append(rows, entities.ListRow{
			ID:          cat.ID,
			Title:       cat.Title,
			Description: cat.Description,
		})
	}
	sections := []entities.ListSection{{Title: "Menu", Rows: rows}}
	return u.messenger.SendList(ctx, to, "Browse Menu",
		"Please select a category to view items:", sections,
		&entities.SendOptions{FooterText: "All prices include tax"},
	)
}

func (u *MenuUseCase) SendSpecialsMenu(ctx context.Context, to string) error {
	return u.SendCategoryMenu(ctx, to, "specials")
}

// SendCategoryMenu lists a category's subcategories. Unknown categories fall
// back to an apology plus navigation, never a dead end.
func (u *MenuUseCase) SendCategoryMenu(ctx context.Context, to, categoryID string) error {
	cat, ok := u.catalog.GetCategory(categoryID)
	if !ok {
		if err := u.messenger.SendText(ctx, to, "Sorry, that selection is not currently available."); err != nil {
			return err
		}
		return u.SendNavigationButtons(ctx, to)
	}

	var rows []entities.ListRow
	for _, sub := range cat.Subcategories {
		rows = append(rows, entities.ListRow{
			ID:          sub.ID,
			Title:       sub.Title,
			Description: sub.Description,
		})
	}
	sections := []entities.ListSection{{Title: cat.Title, Rows: rows}}
	return u.messenger.SendList(ctx, to, "Select",
		fmt.Sprintf("Browse our %s selection:", cat.Title), sections,
		&entities.SendOptions{HeaderText: cat.Title},
	)
}

// SendItemList lists a subcategory's items with prices.
func (u *MenuUseCase) SendItemList(ctx context.Context, to, subcategoryID string) error {
	sub, ok := u.catalog.GetSubcategory(subcategoryID)
	if !ok {
		if err := u.messenger.SendText(ctx, to, "Sorry, those items are not currently available."); err != nil {
			return err
		}
		return u.SendNavigationButtons(ctx, to)
	}

	var rows []entities.ListRow
	for _, item := range sub.Items {
		rows = append(rows, entities.ListRow{
			ID:          item.ID,
			Title:       item.Title,
			Description: fmt.Sprintf("%s - $%.2f", item.Description, item.Price),
		})
	}
	sections := []entities.ListSection{{Title: sub.Title, Rows: rows}}
	return u.messenger.SendList(ctx, to, fmt.Sprintf("View %s Items", sub.Title),
		fmt.Sprintf("Select an item from our %s menu:", sub.Title), sections,
		&entities.SendOptions{FooterText: "Tap an item to add it to your cart"},
	)
}

func (u *MenuUseCase) SendHelp(ctx context.Context, to string) error {
	help := strings.Join([]string{
		"Here is what I understand:",
		"- *menu* to browse our menu",
		"- *cart* to review your cart",
		"- *checkout* to place your order",
		"- *promo <code>* to apply a promo code",
		"- *cancel* to cancel a checkout in progress",
	}, "\n")
	return u.messenger.SendText(ctx, to, help)
}

// SendNavigationButtons is the standard "what next" affordance after any
// terminal or fallback response.
func (u *MenuUseCase) SendNavigationButtons(ctx context.Context, to string) error {
	return u.messenger.SendReplyButtons(ctx, to,
		"What would you like to do next?",
		[]entities.Button{
			{ID: "main-menu", Title: "Main Menu"},
			{ID: "view-cart", Title: "View Cart"},
			{ID: "checkout", Title: "Checkout"},
		},
		nil,
	)
}

// RenderCartSummary formats a cart summary plus its action buttons.
func (u *MenuUseCase) RenderCartSummary(ctx context.Context, to string, summary entities.CartSummary) error {
	if len(summary.Lines) == 0 {
		return u.messenger.SendText(ctx, to, "Your cart is empty. Please add items before checkout.")
	}

	var b strings.Builder
	b.WriteString("🛒 *Your Cart*\n\n")
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
	fmt.Fprintf(&b, "*Total:* $%.2f\n", summary.Total)

	if err := u.messenger.SendText(ctx, to, b.String()); err != nil {
		return err
	}
	return u.messenger.SendReplyButtons(ctx, to,
		"What would you like to do with your cart?",
		[]entities.Button{
			{ID: "checkout", Title: "Checkout"},
			{ID: "main-menu", Title: "Continue Shopping"},
			{ID: "cancel-order", Title: "Cancel"},
		},
		nil,
	)
}
