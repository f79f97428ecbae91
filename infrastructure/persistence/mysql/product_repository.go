package mysql

import (
	"context"
	"errors"
	"fmt"

	"comedor/domain/catalog"
	"comedor/infrastructure/persistence"
	"comedor/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

// ProductRepository is the GORM implementation of catalog.ProductRepository.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates the repository.
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Insert stores a new product and writes the generated ID back.
func (r *ProductRepository) Insert(ctx context.Context, p *catalog.Product) error {
	productPO := po.FromProductDomain(p)
	if err := r.getDB(ctx).Create(productPO).Error; err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	p.SetID(productPO.ID)
	return nil
}

// Update rewrites the product row, including stock and flags.
func (r *ProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	productPO := po.FromProductDomain(p)
	result := r.getDB(ctx).Model(&po.ProductPO{}).Where("id = ?", productPO.ID).Updates(map[string]any{
		"name":        productPO.Name,
		"description": productPO.Description,
		"price":       productPO.Price,
		"image_url":   productPO.ImageURL,
		"category_id": productPO.CategoryID,
		"stock":       productPO.Stock,
		"available":   productPO.Available,
		"active":      productPO.Active,
		"updated_at":  productPO.UpdatedAt,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.NewProductNotFoundError(productPO.ID)
	}
	return nil
}

// FindByID loads one product regardless of flags so callers can distinguish
// absent from inactive.
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	var productPO po.ProductPO
	if err := r.getDB(ctx).First(&productPO, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.NewProductNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return productPO.ToDomain(), nil
}

// FindAll lists active products.
func (r *ProductRepository) FindAll(ctx context.Context) ([]*catalog.Product, error) {
	var productPOs []po.ProductPO
	if err := r.getDB(ctx).Where("active = ?", true).Order("name ASC").Find(&productPOs).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return toProducts(productPOs), nil
}

// FindByCategory lists active products in a category.
func (r *ProductRepository) FindByCategory(ctx context.Context, categoryID int64) ([]*catalog.Product, error) {
	var productPOs []po.ProductPO
	if err := r.getDB(ctx).Where("active = ? AND category_id = ?", true, categoryID).
		Order("name ASC").Find(&productPOs).Error; err != nil {
		return nil, fmt.Errorf("failed to list products by category: %w", err)
	}
	return toProducts(productPOs), nil
}

// FindAvailable lists active products currently flagged available.
func (r *ProductRepository) FindAvailable(ctx context.Context) ([]*catalog.Product, error) {
	var productPOs []po.ProductPO
	if err := r.getDB(ctx).Where("active = ? AND available = ?", true, true).
		Order("name ASC").Find(&productPOs).Error; err != nil {
		return nil, fmt.Errorf("failed to list available products: %w", err)
	}
	return toProducts(productPOs), nil
}

// Search lists active products whose name or description matches term.
func (r *ProductRepository) Search(ctx context.Context, term string) ([]*catalog.Product, error) {
	pattern := "%" + term + "%"
	var productPOs []po.ProductPO
	if err := r.getDB(ctx).Where("active = ? AND (name LIKE ? OR description LIKE ?)", true, pattern, pattern).
		Order("name ASC").Find(&productPOs).Error; err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return toProducts(productPOs), nil
}

func toProducts(productPOs []po.ProductPO) []*catalog.Product {
	products := make([]*catalog.Product, len(productPOs))
	for i := range productPOs {
		products[i] = productPOs[i].ToDomain()
	}
	return products
}

var _ catalog.ProductRepository = (*ProductRepository)(nil)
