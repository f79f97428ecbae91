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

// CategoryRepository is the GORM implementation of catalog.CategoryRepository.
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates the repository.
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Insert stores a new category and writes the generated ID back.
func (r *CategoryRepository) Insert(ctx context.Context, c *catalog.Category) error {
	categoryPO := po.FromCategoryDomain(c)
	if err := r.getDB(ctx).Create(categoryPO).Error; err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	c.SetID(categoryPO.ID)
	return nil
}

// FindByID loads one category.
func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*catalog.Category, error) {
	var categoryPO po.CategoryPO
	if err := r.getDB(ctx).First(&categoryPO, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.NewCategoryNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return categoryPO.ToDomain(), nil
}

// FindAll lists active categories ordered for display.
func (r *CategoryRepository) FindAll(ctx context.Context) ([]*catalog.Category, error) {
	var categoryPOs []po.CategoryPO
	if err := r.getDB(ctx).Where("active = ?", true).
		Order("display_order ASC, name ASC").Find(&categoryPOs).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	categories := make([]*catalog.Category, len(categoryPOs))
	for i := range categoryPOs {
		categories[i] = categoryPOs[i].ToDomain()
	}
	return categories, nil
}

// Exists reports whether an active category with the ID exists.
func (r *CategoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.getDB(ctx).Model(&po.CategoryPO{}).
		Where("id = ? AND active = ?", id, true).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category: %w", err)
	}
	return count > 0, nil
}

var _ catalog.CategoryRepository = (*CategoryRepository)(nil)
