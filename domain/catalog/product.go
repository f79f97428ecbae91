/*
Package catalog holds the menu side of the platform: products grouped into
categories. Products are never physically removed; deactivation (soft delete)
takes them off every ordering path while history keeps referencing them.
*/
package catalog

import (
	"time"

	"comedor/domain/shared"
)

// Product is a menu entry. Stock mutations go through DebitStock and
// CreditStock so the stock ≥ 0 invariant cannot be bypassed.
type Product struct {
	id          int64
	name        string
	description string
	price       shared.Money
	imageURL    string
	categoryID  int64
	stock       int
	available   bool
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

// NewProduct creates an active, available product.
func NewProduct(name, description string, price shared.Money, imageURL string, categoryID int64, stock int) (*Product, error) {
	if name == "" {
		return nil, NewInvalidProductError("name", "product name is required")
	}
	if price.IsNegative() {
		return nil, NewInvalidProductError("price", "product price cannot be negative")
	}
	if stock < 0 {
		return nil, NewInvalidProductError("stock", "product stock cannot be negative")
	}

	now := time.Now().UTC()
	return &Product{
		name:        name,
		description: description,
		price:       price,
		imageURL:    imageURL,
		categoryID:  categoryID,
		stock:       stock,
		available:   true,
		active:      true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// HasStock reports whether the product can cover a requested quantity: it
// must be active, available and hold at least that much stock.
func (p *Product) HasStock(quantity int) bool {
	return p.active && p.available && p.stock >= quantity
}

// DebitStock removes quantity units, failing when stock cannot cover them.
func (p *Product) DebitStock(quantity int) error {
	if quantity <= 0 {
		return NewInvalidProductError("quantity", "debit quantity must be positive")
	}
	if p.stock < quantity {
		return NewInsufficientStockError(p.name, quantity, p.stock)
	}
	p.stock -= quantity
	p.updatedAt = time.Now().UTC()
	return nil
}

// CreditStock returns quantity units to stock (restock or cancellation).
func (p *Product) CreditStock(quantity int) error {
	if quantity <= 0 {
		return NewInvalidProductError("quantity", "credit quantity must be positive")
	}
	p.stock += quantity
	p.updatedAt = time.Now().UTC()
	return nil
}

// SetAvailable toggles the availability flag (e.g. sold out for the day).
func (p *Product) SetAvailable(available bool) {
	p.available = available
	p.updatedAt = time.Now().UTC()
}

// Deactivate is the soft delete: the product disappears from every ordering
// path but stays referenced by historical order lines.
func (p *Product) Deactivate() {
	p.active = false
	p.updatedAt = time.Now().UTC()
}

// UpdateDetails replaces the editable attributes.
func (p *Product) UpdateDetails(name, description string, price shared.Money, imageURL string, stock int, available bool) error {
	if name == "" {
		return NewInvalidProductError("name", "product name is required")
	}
	if price.IsNegative() {
		return NewInvalidProductError("price", "product price cannot be negative")
	}
	if stock < 0 {
		return NewInvalidProductError("stock", "product stock cannot be negative")
	}
	p.name = name
	p.description = description
	p.price = price
	p.imageURL = imageURL
	p.stock = stock
	p.available = available
	p.updatedAt = time.Now().UTC()
	return nil
}

// SetID is called by the repository after insert.
func (p *Product) SetID(id int64) {
	p.id = id
}

func (p *Product) ID() int64            { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) Description() string  { return p.description }
func (p *Product) Price() shared.Money  { return p.price }
func (p *Product) ImageURL() string     { return p.imageURL }
func (p *Product) CategoryID() int64    { return p.categoryID }
func (p *Product) Stock() int           { return p.stock }
func (p *Product) IsAvailable() bool    { return p.available }
func (p *Product) IsActive() bool       { return p.active }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

// ProductReconstructionDTO rebuilds a Product from storage. Repository use only.
type ProductReconstructionDTO struct {
	ID          int64
	Name        string
	Description string
	Price       shared.Money
	ImageURL    string
	CategoryID  int64
	Stock       int
	Available   bool
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RebuildProductFromDTO reconstructs a product without revalidation.
func RebuildProductFromDTO(dto ProductReconstructionDTO) *Product {
	return &Product{
		id:          dto.ID,
		name:        dto.Name,
		description: dto.Description,
		price:       dto.Price,
		imageURL:    dto.ImageURL,
		categoryID:  dto.CategoryID,
		stock:       dto.Stock,
		available:   dto.Available,
		active:      dto.Active,
		createdAt:   dto.CreatedAt,
		updatedAt:   dto.UpdatedAt,
	}
}
