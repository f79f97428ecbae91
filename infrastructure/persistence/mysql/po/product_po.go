package po

import (
	"time"

	"comedor/domain/catalog"
	"comedor/domain/shared"

	"github.com/shopspring/decimal"
)

// ProductPO maps the products table.
type ProductPO struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"size:255;not null"`
	Description string          `gorm:"size:1000"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ImageURL    string          `gorm:"size:500"`
	CategoryID  int64           `gorm:"index;not null"` // ID only, no association
	Stock       int             `gorm:"not null"`
	Available   bool            `gorm:"not null;default:true"`
	Active      bool            `gorm:"index;not null;default:true"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime"`
}

// TableName names the table.
func (ProductPO) TableName() string {
	return "products"
}

// FromProductDomain converts the entity to its persistence object.
func FromProductDomain(p *catalog.Product) *ProductPO {
	return &ProductPO{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price().Amount(),
		ImageURL:    p.ImageURL(),
		CategoryID:  p.CategoryID(),
		Stock:       p.Stock(),
		Available:   p.IsAvailable(),
		Active:      p.IsActive(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

// ToDomain reconstructs the entity.
func (po *ProductPO) ToDomain() *catalog.Product {
	return catalog.RebuildProductFromDTO(catalog.ProductReconstructionDTO{
		ID:          po.ID,
		Name:        po.Name,
		Description: po.Description,
		Price:       shared.NewMoney(po.Price),
		ImageURL:    po.ImageURL,
		CategoryID:  po.CategoryID,
		Stock:       po.Stock,
		Available:   po.Available,
		Active:      po.Active,
		CreatedAt:   po.CreatedAt,
		UpdatedAt:   po.UpdatedAt,
	})
}

// CategoryPO maps the categories table.
type CategoryPO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"size:100;not null"`
	Description  string    `gorm:"size:500"`
	DisplayOrder int       `gorm:"not null;default:0"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// TableName names the table.
func (CategoryPO) TableName() string {
	return "categories"
}

// FromCategoryDomain converts the entity to its persistence object.
func FromCategoryDomain(c *catalog.Category) *CategoryPO {
	return &CategoryPO{
		ID:           c.ID(),
		Name:         c.Name(),
		Description:  c.Description(),
		DisplayOrder: c.DisplayOrder(),
		Active:       c.IsActive(),
		CreatedAt:    c.CreatedAt(),
	}
}

// ToDomain reconstructs the entity.
func (po *CategoryPO) ToDomain() *catalog.Category {
	return catalog.RebuildCategoryFromDTO(catalog.CategoryReconstructionDTO{
		ID:           po.ID,
		Name:         po.Name,
		Description:  po.Description,
		DisplayOrder: po.DisplayOrder,
		Active:       po.Active,
		CreatedAt:    po.CreatedAt,
	})
}
