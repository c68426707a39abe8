package entities

// MenuItem is a single orderable catalog entry.
type MenuItem struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Price            float64  `json:"price"`
	Allergens        []string `json:"allergens,omitempty"`
	HasCustomOptions bool     `json:"has_custom_options"`
}

// MenuSubcategory groups items inside a category (e.g. "Daily Specials").
type MenuSubcategory struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Items       []MenuItem `json:"items"`
}

// MenuCategory is a top-level browse entry (e.g. "Appetizers").
type MenuCategory struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Subcategories []MenuSubcategory `json:"subcategories"`
}
