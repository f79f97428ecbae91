package catalog

import "time"

// Category groups products on the menu (empanadas, drinks, combos).
type Category struct {
	id           int64
	name         string
	description  string
	displayOrder int
	active       bool
	createdAt    time.Time
}

// NewCategory creates an active category.
func NewCategory(name, description string, displayOrder int) (*Category, error) {
	if name == "" {
		return nil, NewInvalidProductError("name", "category name is required")
	}
	return &Category{
		name:         name,
		description:  description,
		displayOrder: displayOrder,
		active:       true,
		createdAt:    time.Now().UTC(),
	}, nil
}

// SetID is called by the repository after insert.
func (c *Category) SetID(id int64) {
	c.id = id
}

func (c *Category) ID() int64            { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) Description() string  { return c.description }
func (c *Category) DisplayOrder() int    { return c.displayOrder }
func (c *Category) IsActive() bool       { return c.active }
func (c *Category) CreatedAt() time.Time { return c.createdAt }

// CategoryReconstructionDTO rebuilds a Category from storage.
type CategoryReconstructionDTO struct {
	ID           int64
	Name         string
	Description  string
	DisplayOrder int
	Active       bool
	CreatedAt    time.Time
}

// RebuildCategoryFromDTO reconstructs a category without revalidation.
func RebuildCategoryFromDTO(dto CategoryReconstructionDTO) *Category {
	return &Category{
		id:           dto.ID,
		name:         dto.Name,
		description:  dto.Description,
		displayOrder: dto.DisplayOrder,
		active:       dto.Active,
		createdAt:    dto.CreatedAt,
	}
}
