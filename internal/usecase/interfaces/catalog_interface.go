package interfaces

import "github.com/JeSappelleWilly/dokalbot/internal/domain/entities"

// ICatalog is the read-only menu hierarchy, loaded once at startup and
// treated as constant thereafter.
type ICatalog interface {
	Categories() []entities.MenuCategory
	GetCategory(id string) (entities.MenuCategory, bool)
	GetSubcategory(id string) (entities.MenuSubcategory, bool)
	GetItem(id string) (entities.MenuItem, bool)
	FindByTitle(title string) (entities.MenuItem, bool)
}
