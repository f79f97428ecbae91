package catalog

import (
	"errors"
	"fmt"

	"comedor/domain/shared"
)

var (
	// ErrProductNotFound: no product with the requested identifier.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductInactive: the product was soft-deleted.
	ErrProductInactive = errors.New("product is inactive")

	// ErrProductUnavailable: the product is flagged unavailable for ordering.
	ErrProductUnavailable = errors.New("product is not available")

	// ErrInsufficientStock: a debit asked for more than the stock holds.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrCategoryNotFound: no category with the requested identifier.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidProduct: a product or category attribute failed validation.
	ErrInvalidProduct = errors.New("invalid product")
)

// NewProductNotFoundError builds a not-found error for a product ID.
func NewProductNotFoundError(productID int64) error {
	return &catalogError{
		sentinel: ErrProductNotFound,
		message:  fmt.Sprintf("product %d not found", productID),
		stack:    shared.CaptureStack(3),
	}
}

// NewProductInactiveError reports an attempt to order a soft-deleted product.
func NewProductInactiveError(name string) error {
	return &catalogError{
		sentinel: ErrProductInactive,
		message:  fmt.Sprintf("product %s is no longer offered", name),
		stack:    shared.CaptureStack(3),
	}
}

// NewProductUnavailableError reports an attempt to order an unavailable product.
func NewProductUnavailableError(name string) error {
	return &catalogError{
		sentinel: ErrProductUnavailable,
		message:  fmt.Sprintf("product %s is not available", name),
		stack:    shared.CaptureStack(3),
	}
}

// NewInsufficientStockError reports requested vs available quantities.
func NewInsufficientStockError(name string, requested, available int) error {
	return &catalogError{
		sentinel: ErrInsufficientStock,
		message:  fmt.Sprintf("insufficient stock for %s: requested %d, available %d", name, requested, available),
		stack:    shared.CaptureStack(3),
	}
}

// NewCategoryNotFoundError builds a not-found error for a category ID.
func NewCategoryNotFoundError(categoryID int64) error {
	return &catalogError{
		sentinel: ErrCategoryNotFound,
		message:  fmt.Sprintf("category %d not found", categoryID),
		stack:    shared.CaptureStack(3),
	}
}

// NewInvalidProductError reports a validation failure on a field.
func NewInvalidProductError(field, reason string) error {
	return &catalogError{
		sentinel: ErrInvalidProduct,
		field:    field,
		message:  reason,
		stack:    shared.CaptureStack(3),
	}
}

type catalogError struct {
	sentinel error
	field    string
	message  string
	stack    []uintptr
}

func (e *catalogError) Error() string {
	return e.message
}

func (e *catalogError) Unwrap() error {
	return e.sentinel
}

func (e *catalogError) Stack() []string {
	return shared.FormatStack(e.stack)
}
