package catalog

import "context"

// ProductRepository persists products. Read paths used for ordering filter
// out inactive products; FindByID returns any product so the workflow can
// distinguish "absent" from "inactive".
type ProductRepository interface {
	Insert(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error

	// FindByID loads one product regardless of flags, or ErrProductNotFound.
	FindByID(ctx context.Context, id int64) (*Product, error)

	// FindAll lists active products.
	FindAll(ctx context.Context) ([]*Product, error)

	// FindByCategory lists active products in a category.
	FindByCategory(ctx context.Context, categoryID int64) ([]*Product, error)

	// FindAvailable lists active products currently flagged available.
	FindAvailable(ctx context.Context) ([]*Product, error)

	// Search lists active products whose name or description matches term.
	Search(ctx context.Context, term string) ([]*Product, error)
}

// CategoryRepository persists menu categories.
type CategoryRepository interface {
	Insert(ctx context.Context, c *Category) error

	// FindByID loads one category, or ErrCategoryNotFound.
	FindByID(ctx context.Context, id int64) (*Category, error)

	// FindAll lists active categories ordered for display.
	FindAll(ctx context.Context) ([]*Category, error)

	// Exists reports whether an active category with the ID exists.
	Exists(ctx context.Context, id int64) (bool, error)
}
