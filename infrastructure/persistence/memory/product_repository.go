package memory

import (
	"context"
	"sort"
	"strings"

	"comedor/domain/catalog"
)

// ProductRepository is the in-memory implementation of catalog.ProductRepository.
type ProductRepository struct {
	store *Store
}

// NewProductRepository creates the repository.
func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

// Insert stores a new product, assigning the identifier.
func (r *ProductRepository) Insert(ctx context.Context, p *catalog.Product) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextProductID++
	p.SetID(s.nextProductID)
	s.products[p.ID()] = toProductDTO(p)
	return nil
}

// Update rewrites the stored product.
func (r *ProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[p.ID()]; !ok {
		return catalog.NewProductNotFoundError(p.ID())
	}
	s.products[p.ID()] = toProductDTO(p)
	return nil
}

// FindByID loads one product regardless of flags.
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	dto, ok := s.products[id]
	if !ok {
		return nil, catalog.NewProductNotFoundError(id)
	}
	return catalog.RebuildProductFromDTO(dto), nil
}

// FindAll lists active products.
func (r *ProductRepository) FindAll(ctx context.Context) ([]*catalog.Product, error) {
	return r.findWhere(func(dto catalog.ProductReconstructionDTO) bool {
		return dto.Active
	}), nil
}

// FindByCategory lists active products in a category.
func (r *ProductRepository) FindByCategory(ctx context.Context, categoryID int64) ([]*catalog.Product, error) {
	return r.findWhere(func(dto catalog.ProductReconstructionDTO) bool {
		return dto.Active && dto.CategoryID == categoryID
	}), nil
}

// FindAvailable lists active products currently flagged available.
func (r *ProductRepository) FindAvailable(ctx context.Context) ([]*catalog.Product, error) {
	return r.findWhere(func(dto catalog.ProductReconstructionDTO) bool {
		return dto.Active && dto.Available
	}), nil
}

// Search lists active products whose name or description contains term,
// case-insensitively.
func (r *ProductRepository) Search(ctx context.Context, term string) ([]*catalog.Product, error) {
	needle := strings.ToLower(term)
	return r.findWhere(func(dto catalog.ProductReconstructionDTO) bool {
		return dto.Active &&
			(strings.Contains(strings.ToLower(dto.Name), needle) ||
				strings.Contains(strings.ToLower(dto.Description), needle))
	}), nil
}

func (r *ProductRepository) findWhere(match func(catalog.ProductReconstructionDTO) bool) []*catalog.Product {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var dtos []catalog.ProductReconstructionDTO
	for _, dto := range s.products {
		if match(dto) {
			dtos = append(dtos, dto)
		}
	}
	sort.Slice(dtos, func(i, j int) bool { return dtos[i].Name < dtos[j].Name })

	products := make([]*catalog.Product, len(dtos))
	for i, dto := range dtos {
		products[i] = catalog.RebuildProductFromDTO(dto)
	}
	return products
}

func toProductDTO(p *catalog.Product) catalog.ProductReconstructionDTO {
	return catalog.ProductReconstructionDTO{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price(),
		ImageURL:    p.ImageURL(),
		CategoryID:  p.CategoryID(),
		Stock:       p.Stock(),
		Available:   p.IsAvailable(),
		Active:      p.IsActive(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

var _ catalog.ProductRepository = (*ProductRepository)(nil)

// CategoryRepository is the in-memory implementation of catalog.CategoryRepository.
type CategoryRepository struct {
	store *Store
}

// NewCategoryRepository creates the repository.
func NewCategoryRepository(store *Store) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// Insert stores a new category, assigning the identifier.
func (r *CategoryRepository) Insert(ctx context.Context, c *catalog.Category) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextCategoryID++
	c.SetID(s.nextCategoryID)
	s.categories[c.ID()] = catalog.CategoryReconstructionDTO{
		ID:           c.ID(),
		Name:         c.Name(),
		Description:  c.Description(),
		DisplayOrder: c.DisplayOrder(),
		Active:       c.IsActive(),
		CreatedAt:    c.CreatedAt(),
	}
	return nil
}

// FindByID loads one category.
func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*catalog.Category, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	dto, ok := s.categories[id]
	if !ok {
		return nil, catalog.NewCategoryNotFoundError(id)
	}
	return catalog.RebuildCategoryFromDTO(dto), nil
}

// FindAll lists active categories ordered for display.
func (r *CategoryRepository) FindAll(ctx context.Context) ([]*catalog.Category, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var dtos []catalog.CategoryReconstructionDTO
	for _, dto := range s.categories {
		if dto.Active {
			dtos = append(dtos, dto)
		}
	}
	sort.Slice(dtos, func(i, j int) bool {
		if dtos[i].DisplayOrder != dtos[j].DisplayOrder {
			return dtos[i].DisplayOrder < dtos[j].DisplayOrder
		}
		return dtos[i].Name < dtos[j].Name
	})

	categories := make([]*catalog.Category, len(dtos))
	for i, dto := range dtos {
		categories[i] = catalog.RebuildCategoryFromDTO(dto)
	}
	return categories, nil
}

// Exists reports whether an active category with the ID exists.
func (r *CategoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	dto, ok := s.categories[id]
	return ok && dto.Active, nil
}

var _ catalog.CategoryRepository = (*CategoryRepository)(nil)
