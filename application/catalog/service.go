// Package catalog is the application layer for menu management: product and
// category CRUD, availability and the soft delete. Plain lookups and writes;
// the only cross-entity rule is that a product's category must exist.
package catalog

import (
	"context"

	"comedor/domain/catalog"
	"comedor/domain/shared"
	"comedor/pkg/logger"

	"go.uber.org/zap"
)

// Service handles catalog reads and admin mutations.
type Service struct {
	products   catalog.ProductRepository
	categories catalog.CategoryRepository
}

// NewService creates the catalog application service.
func NewService(products catalog.ProductRepository, categories catalog.CategoryRepository) *Service {
	return &Service{products: products, categories: categories}
}

// ListProducts returns all active products.
func (s *Service) ListProducts(ctx context.Context) ([]*ProductResponse, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// GetProduct returns one product by ID.
func (s *Service) GetProduct(ctx context.Context, id int64) (*ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// ListByCategory returns the active products of one category.
func (s *Service) ListByCategory(ctx context.Context, categoryID int64) ([]*ProductResponse, error) {
	products, err := s.products.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// ListAvailable returns the products customers can order right now.
func (s *Service) ListAvailable(ctx context.Context) ([]*ProductResponse, error) {
	products, err := s.products.FindAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// SearchProducts returns active products matching a term.
func (s *Service) SearchProducts(ctx context.Context, term string) ([]*ProductResponse, error) {
	products, err := s.products.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// CreateProduct adds a menu entry after checking its category exists.
func (s *Service) CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.categories.Exists(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, catalog.NewCategoryNotFoundError(req.CategoryID)
	}

	price, err := shared.NewMoneyFromString(req.Price)
	if err != nil {
		return nil, catalog.NewInvalidProductError("price", "price must be a decimal number")
	}

	p, err := catalog.NewProduct(req.Name, req.Description, price, req.ImageURL, req.CategoryID, req.Stock)
	if err != nil {
		return nil, err
	}
	if err := s.products.Insert(ctx, p); err != nil {
		return nil, err
	}

	logger.Info("product created", zap.Int64("product_id", p.ID()), zap.String("name", p.Name()))
	return toProductResponse(p), nil
}

// UpdateProduct replaces a product's editable attributes.
func (s *Service) UpdateProduct(ctx context.Context, id int64, req UpdateProductRequest) (*ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	price, err := shared.NewMoneyFromString(req.Price)
	if err != nil {
		return nil, catalog.NewInvalidProductError("price", "price must be a decimal number")
	}
	if err := p.UpdateDetails(req.Name, req.Description, price, req.ImageURL, req.Stock, req.Available); err != nil {
		return nil, err
	}
	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// DeactivateProduct is the soft delete: the product stays in storage for
// order history but leaves every catalog read path.
func (s *Service) DeactivateProduct(ctx context.Context, id int64) error {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	p.Deactivate()
	if err := s.products.Update(ctx, p); err != nil {
		return err
	}
	logger.Info("product deactivated", zap.Int64("product_id", id))
	return nil
}

// RestockProduct credits stock back to a product.
func (s *Service) RestockProduct(ctx context.Context, id int64, req RestockRequest) (*ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.CreditStock(req.Quantity); err != nil {
		return nil, err
	}
	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// ListCategories returns all active categories in display order.
func (s *Service) ListCategories(ctx context.Context) ([]*CategoryResponse, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]*CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = toCategoryResponse(c)
	}
	return responses, nil
}

// CreateCategory adds a menu category.
func (s *Service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	c, err := catalog.NewCategory(req.Name, req.Description, req.DisplayOrder)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Insert(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

func toProductResponse(p *catalog.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price().String(),
		ImageURL:    p.ImageURL(),
		CategoryID:  p.CategoryID(),
		Stock:       p.Stock(),
		Available:   p.IsAvailable(),
		Active:      p.IsActive(),
		CreatedAt:   p.CreatedAt(),
	}
}

func toProductResponses(products []*catalog.Product) []*ProductResponse {
	responses := make([]*ProductResponse, len(products))
	for i, p := range products {
		responses[i] = toProductResponse(p)
	}
	return responses
}

func toCategoryResponse(c *catalog.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:           c.ID(),
		Name:         c.Name(),
		Description:  c.Description(),
		DisplayOrder: c.DisplayOrder(),
	}
}
