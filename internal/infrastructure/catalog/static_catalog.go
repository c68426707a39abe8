package catalog

import (
	"strings"

	"github.com/JeSappelleWilly/dokalbot/internal/domain/entities"
	"github.com/JeSappelleWilly/dokalbot/internal/usecase/interfaces"
)

// StaticCatalog serves the restaurant menu from in-process data. The hierarchy
// is built once at construction and indexed by id for constant-time lookups.
type StaticCatalog struct {
	categories    []entities.MenuCategory
	byCategory    map[string]entities.MenuCategory
	bySubcategory map[string]entities.MenuSubcategory
	byItem        map[string]entities.MenuItem
}

var _ interfaces.ICatalog = (*StaticCatalog)(nil)

func NewStaticCatalog() *StaticCatalog {
	return newCatalog(defaultMenu())
}

func newCatalog(categories []entities.MenuCategory) *StaticCatalog {
	c := &StaticCatalog{
		categories:    categories,
		byCategory:    make(map[string]entities.MenuCategory),
		bySubcategory: make(map[string]entities.MenuSubcategory),
		byItem:        make(map[string]entities.MenuItem),
	}
	for _, cat := range categories {
		c.byCategory[cat.ID] = cat
		for _, sub := range cat.Subcategories {
			c.bySubcategory[sub.ID] = sub
			for _, item := range sub.Items {
				c.byItem[item.ID] = item
			}
		}
	}
	return c
}

func (c *StaticCatalog) Categories() []entities.MenuCategory {
	return c.categories
}

func (c *StaticCatalog) GetCategory(id string) (entities.MenuCategory, bool) {
	cat, ok := c.byCategory[id]
	return cat, ok
}

func (c *StaticCatalog) GetSubcategory(id string) (entities.MenuSubcategory, bool) {
	sub, ok := c.bySubcategory[id]
	return sub, ok
}

func (c *StaticCatalog) GetItem(id string) (entities.MenuItem, bool) {
	item, ok := c.byItem[id]
	return item, ok
}

func (c *StaticCatalog) FindByTitle(title string) (entities.MenuItem, bool) {
	for _, item := range c.byItem {
		if strings.EqualFold(item.Title, title) {
			return item, true
		}
	}
	return entities.MenuItem{}, false
}

func defaultMenu() []entities.MenuCategory {
	return []entities.MenuCategory{
		{
			ID:          "specials",
			Title:       "Today's Specials",
			Description: "Limited time offers and daily specials",
			Subcategories: []entities.MenuSubcategory{
				{
					ID:          "daily-specials",
					Title:       "Daily Specials",
					Description: "Fresh dishes available today only",
					Items: []entities.MenuItem{
						{ID: "special-1", Title: "Chef's Special Pasta", Description: "House-made pasta with seasonal ingredients", Price: 16.99, HasCustomOptions: true},
						{ID: "special-2", Title: "Serge's Special Pasta", Description: "House-made pasta with seasonal ingredients", Price: 18.99, HasCustomOptions: true},
					},
				},
				{
					ID:          "weekly-deals",
					Title:       "Weekly Deals",
					Description: "Special offers valid this week",
					Items: []entities.MenuItem{
						{ID: "deal-1", Title: "Family Bundle", Description: "Feeds 4: Includes 1 large pizza, 4 sides, and 2L drink", Price: 39.99},
						{ID: "deal-2", Title: "Bros Bundle", Description: "Feeds 2: Includes 1 large pizza, 4 sides, and 2L drink", Price: 19.99},
					},
				},
			},
		},
		{
			ID:          "appetizers",
			Title:       "Appetizers",
			Description: "Starters and small plates",
			Subcategories: []entities.MenuSubcategory{
				{
					ID:          "hot-appetizers",
					Title:       "Hot Appetizers",
					Description: "Warm starters to begin your meal",
					Items: []entities.MenuItem{
						{ID: "app-1", Title: "Spinach & Artichoke Dip", Description: "Creamy dip with warm tortilla chips", Price: 9.99},
					},
				},
				{
					ID:          "cold-appetizers",
					Title:       "Cold Appetizers",
					Description: "Refreshing starters and shareable plates",
					Items: []entities.MenuItem{
						{ID: "app-4", Title: "Hummus Platter", Description: "House-made hummus with vegetables and pita", Price: 10.99},
					},
				},
			},
		},
		{
			ID:          "mains",
			Title:       "Main Courses",
			Description: "Hearty entrees and signature dishes",
			Subcategories: []entities.MenuSubcategory{
				{
					ID:          "pasta",
					Title:       "Pasta Dishes",
					Description: "Fresh pasta with house-made sauces",
					Items: []entities.MenuItem{
						{ID: "pasta-1", Title: "Spaghetti Bolognese", Description: "Classic meat sauce with parmesan", Price: 15.99},
					},
				},
				{
					ID:          "grill",
					Title:       "From the Grill",
					Description: "Perfectly grilled meats and seafood",
					Items: []entities.MenuItem{
						{ID: "grill-1", Title: "Ribeye Steak", Description: "12oz aged beef with roasted vegetables", Price: 28.99, HasCustomOptions: true},
					},
				},
			},
		},
		{
			ID:          "beverages",
			Title:       "Beverages",
			Description: "Refreshing drinks and cocktails",
			Subcategories: []entities.MenuSubcategory{
				{
					ID:          "non-alcoholic",
					Title:       "Non-Alcoholic Drinks",
					Description: "Sodas, juices, and more",
					Items: []entities.MenuItem{
						{ID: "bev-1", Title: "Soft Drinks", Description: "Cola, Diet Cola, Lemon-Lime, Root Beer", Price: 2.99, HasCustomOptions: true},
					},
				},
				{
					ID:          "alcoholic",
					Title:       "Alcoholic Beverages",
					Description: "Beer, wine, and cocktails",
					Items: []entities.MenuItem{
						{ID: "bev-4", Title: "Draft Beer", Description: "Selection of local and imported beers", Price: 5.99, HasCustomOptions: true},
					},
				},
			},
		},
		{
			ID:          "desserts",
			Title:       "Desserts",
			Description: "Sweet treats to end your meal",
			Subcategories: []entities.MenuSubcategory{
				{
					ID:          "cakes",
					Title:       "Cakes & Pies",
					Description: "House-made desserts",
					Items: []entities.MenuItem{
						{ID: "dessert-1", Title: "Chocolate Cake", Description: "Rich layered cake with chocolate ganache", Price: 7.99},
					},
				},
				{
					ID:          "ice-cream",
					Title:       "Ice Cream & Frozen Treats",
					Description: "Cold and creamy desserts",
					Items: []entities.MenuItem{
						{ID: "dessert-4", Title: "Ice Cream Sundae", Description: "Three scoops with toppings and whipped cream", Price: 6.99, HasCustomOptions: true},
					},
				},
			},
		},
	}
}
