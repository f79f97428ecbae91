package catalog

import (
	"testing"

	"comedor/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(t *testing.T, s string) shared.Money {
	t.Helper()
	m, err := shared.NewMoneyFromString(s)
	require.NoError(t, err)
	return m
}

func newProduct(t *testing.T, stock int) *Product {
	t.Helper()
	p, err := NewProduct("Empanada de Pollo", "crispy", price(t, "50.00"), "", 1, stock)
	require.NoError(t, err)
	return p
}

func TestNewProduct_Validation(t *testing.T) {
	_, err := NewProduct("", "", price(t, "50.00"), "", 1, 10)
	assert.ErrorIs(t, err, ErrInvalidProduct)

	_, err = NewProduct("Empanada", "", price(t, "-1.00"), "", 1, 10)
	assert.ErrorIs(t, err, ErrInvalidProduct)

	_, err = NewProduct("Empanada", "", price(t, "50.00"), "", 1, -5)
	assert.ErrorIs(t, err, ErrInvalidProduct)
}

func TestNewProduct_StartsActiveAndAvailable(t *testing.T) {
	p := newProduct(t, 10)
	assert.True(t, p.IsActive())
	assert.True(t, p.IsAvailable())
	assert.Equal(t, 10, p.Stock())
}

func TestProduct_HasStock(t *testing.T) {
	p := newProduct(t, 10)

	assert.True(t, p.HasStock(10))
	assert.False(t, p.HasStock(11))

	p.SetAvailable(false)
	assert.False(t, p.HasStock(1))

	p.SetAvailable(true)
	p.Deactivate()
	assert.False(t, p.HasStock(1))
}

func TestProduct_DebitStock(t *testing.T) {
	p := newProduct(t, 10)

	require.NoError(t, p.DebitStock(4))
	assert.Equal(t, 6, p.Stock())

	err := p.DebitStock(7)
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, "insufficient stock for Empanada de Pollo: requested 7, available 6", err.Error())
	assert.Equal(t, 6, p.Stock())

	assert.Error(t, p.DebitStock(0))
}

func TestProduct_CreditStock(t *testing.T) {
	p := newProduct(t, 2)

	require.NoError(t, p.CreditStock(5))
	assert.Equal(t, 7, p.Stock())

	assert.Error(t, p.CreditStock(0))
	assert.Error(t, p.CreditStock(-3))
}

func TestProduct_DeactivateIsSoftDelete(t *testing.T) {
	p := newProduct(t, 10)
	p.Deactivate()

	assert.False(t, p.IsActive())
	// The entity itself survives; only the flag changes.
	assert.Equal(t, "Empanada de Pollo", p.Name())
	assert.Equal(t, 10, p.Stock())
}

func TestProduct_UpdateDetails(t *testing.T) {
	p := newProduct(t, 10)

	require.NoError(t, p.UpdateDetails("Empanada de Res", "beef", price(t, "60.00"), "img", 20, false))
	assert.Equal(t, "Empanada de Res", p.Name())
	assert.Equal(t, "60.00", p.Price().String())
	assert.Equal(t, 20, p.Stock())
	assert.False(t, p.IsAvailable())

	assert.Error(t, p.UpdateDetails("", "", price(t, "60.00"), "", 20, true))
}

func TestNewCategory(t *testing.T) {
	c, err := NewCategory("Empanadas", "fried goods", 1)
	require.NoError(t, err)
	assert.True(t, c.IsActive())
	assert.Equal(t, 1, c.DisplayOrder())

	_, err = NewCategory("", "", 0)
	assert.ErrorIs(t, err, ErrInvalidProduct)
}
