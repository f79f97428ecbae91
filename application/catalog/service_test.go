package catalog

import (
	"context"
	"testing"

	domaincatalog "comedor/domain/catalog"
	"comedor/infrastructure/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *Service {
	t.Helper()
	store := memory.NewStore()
	return NewService(
		memory.NewProductRepository(store),
		memory.NewCategoryRepository(store),
	)
}

func seedCategory(t *testing.T, s *Service) *CategoryResponse {
	t.Helper()
	c, err := s.CreateCategory(context.Background(), CreateCategoryRequest{
		Name:         "Empanadas",
		DisplayOrder: 1,
	})
	require.NoError(t, err)
	return c
}

func seedProduct(t *testing.T, s *Service, categoryID int64, name string) *ProductResponse {
	t.Helper()
	p, err := s.CreateProduct(context.Background(), CreateProductRequest{
		Name:       name,
		Price:      "50.00",
		CategoryID: categoryID,
		Stock:      10,
	})
	require.NoError(t, err)
	return p
}

func TestCreateProduct(t *testing.T) {
	s := newService(t)
	c := seedCategory(t, s)

	p := seedProduct(t, s, c.ID, "Empanada de Pollo")

	assert.NotZero(t, p.ID)
	assert.Equal(t, "50.00", p.Price)
	assert.True(t, p.Available)
	assert.True(t, p.Active)
}

func TestCreateProduct_UnknownCategory(t *testing.T) {
	s := newService(t)

	_, err := s.CreateProduct(context.Background(), CreateProductRequest{
		Name:       "Empanada",
		Price:      "50.00",
		CategoryID: 404,
	})
	assert.ErrorIs(t, err, domaincatalog.ErrCategoryNotFound)
}

func TestCreateProduct_BadPrice(t *testing.T) {
	s := newService(t)
	c := seedCategory(t, s)

	_, err := s.CreateProduct(context.Background(), CreateProductRequest{
		Name:       "Empanada",
		Price:      "fifty",
		CategoryID: c.ID,
	})
	assert.ErrorIs(t, err, domaincatalog.ErrInvalidProduct)
}

func TestDeactivateProduct_LeavesCatalogReads(t *testing.T) {
	s := newService(t)
	ctx := context.Background()
	c := seedCategory(t, s)
	p := seedProduct(t, s, c.ID, "Empanada de Pollo")

	require.NoError(t, s.DeactivateProduct(ctx, p.ID))

	all, err := s.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// Direct lookup still works for order history.
	got, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestUpdateProduct(t *testing.T) {
	s := newService(t)
	ctx := context.Background()
	c := seedCategory(t, s)
	p := seedProduct(t, s, c.ID, "Empanada de Pollo")

	updated, err := s.UpdateProduct(ctx, p.ID, UpdateProductRequest{
		Name:      "Empanada de Res",
		Price:     "60.00",
		Stock:     25,
		Available: false,
	})
	require.NoError(t, err)
	assert.Equal(t, "Empanada de Res", updated.Name)
	assert.Equal(t, "60.00", updated.Price)
	assert.Equal(t, 25, updated.Stock)
	assert.False(t, updated.Available)

	available, err := s.ListAvailable(ctx)
	require.NoError(t, err)
	assert.Empty(t, available)
}

func TestRestockProduct(t *testing.T) {
	s := newService(t)
	c := seedCategory(t, s)
	p := seedProduct(t, s, c.ID, "Empanada de Pollo")

	restocked, err := s.RestockProduct(context.Background(), p.ID, RestockRequest{Quantity: 15})
	require.NoError(t, err)
	assert.Equal(t, 25, restocked.Stock)
}

func TestSearchProducts(t *testing.T) {
	s := newService(t)
	ctx := context.Background()
	c := seedCategory(t, s)
	seedProduct(t, s, c.ID, "Empanada de Pollo")
	seedProduct(t, s, c.ID, "Jugo de Chinola")

	found, err := s.SearchProducts(ctx, "empanada")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Empanada de Pollo", found[0].Name)
}

func TestListByCategory(t *testing.T) {
	s := newService(t)
	ctx := context.Background()
	c := seedCategory(t, s)
	other, err := s.CreateCategory(ctx, CreateCategoryRequest{Name: "Bebidas", DisplayOrder: 2})
	require.NoError(t, err)

	seedProduct(t, s, c.ID, "Empanada de Pollo")
	seedProduct(t, s, other.ID, "Jugo de Chinola")

	products, err := s.ListByCategory(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Empanada de Pollo", products[0].Name)
}

func TestListCategories_DisplayOrder(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	_, err := s.CreateCategory(ctx, CreateCategoryRequest{Name: "Bebidas", DisplayOrder: 2})
	require.NoError(t, err)
	_, err = s.CreateCategory(ctx, CreateCategoryRequest{Name: "Empanadas", DisplayOrder: 1})
	require.NoError(t, err)

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Empanadas", categories[0].Name)
	assert.Equal(t, "Bebidas", categories[1].Name)
}
