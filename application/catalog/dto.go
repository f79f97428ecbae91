package catalog

import "time"

// CreateProductRequest is the admin payload for adding a menu entry.
// Price arrives as a decimal string to keep exact arithmetic end to end.
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
	ImageURL    string `json:"image_url"`
	CategoryID  int64  `json:"category_id" binding:"required"`
	Stock       int    `json:"stock"`
}

// UpdateProductRequest replaces a product's editable attributes.
type UpdateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
	ImageURL    string `json:"image_url"`
	Stock       int    `json:"stock"`
	Available   bool   `json:"available"`
}

// RestockRequest credits stock back to a product.
type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// ProductResponse is the catalog view of a product.
type ProductResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       string    `json:"price"`
	ImageURL    string    `json:"image_url,omitempty"`
	CategoryID  int64     `json:"category_id"`
	Stock       int       `json:"stock"`
	Available   bool      `json:"available"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateCategoryRequest adds a menu category.
type CreateCategoryRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

// CategoryResponse is the catalog view of a category.
type CategoryResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	DisplayOrder int    `json:"display_order"`
}
