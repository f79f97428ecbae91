package memory

import (
	"context"
	"errors"
	"testing"

	"comedor/domain/catalog"
	"comedor/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(t *testing.T, products *ProductRepository, stock int) *catalog.Product {
	t.Helper()
	price, err := shared.NewMoneyFromString("50.00")
	require.NoError(t, err)
	p, err := catalog.NewProduct("Empanada", "", price, "", 1, stock)
	require.NoError(t, err)
	require.NoError(t, products.Insert(context.Background(), p))
	return p
}

func TestUnitOfWork_CommitKeepsWrites(t *testing.T) {
	store := NewStore()
	products := NewProductRepository(store)
	uow := NewUnitOfWork(store)
	ctx := context.Background()

	p := seedProduct(t, products, 10)

	err := uow.Execute(ctx, func(ctx context.Context) error {
		loaded, err := products.FindByID(ctx, p.ID())
		if err != nil {
			return err
		}
		if err := loaded.DebitStock(4); err != nil {
			return err
		}
		return products.Update(ctx, loaded)
	})
	require.NoError(t, err)

	after, err := products.FindByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, 6, after.Stock())
}

func TestUnitOfWork_ErrorRollsBackWrites(t *testing.T) {
	store := NewStore()
	products := NewProductRepository(store)
	uow := NewUnitOfWork(store)
	ctx := context.Background()

	p := seedProduct(t, products, 10)
	boom := errors.New("line rejected")

	err := uow.Execute(ctx, func(ctx context.Context) error {
		loaded, err := products.FindByID(ctx, p.ID())
		if err != nil {
			return err
		}
		if err := loaded.DebitStock(4); err != nil {
			return err
		}
		if err := products.Update(ctx, loaded); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// The persisted debit was undone.
	after, err := products.FindByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, 10, after.Stock())
}

func TestUnitOfWork_RollbackRestoresIDCounters(t *testing.T) {
	store := NewStore()
	products := NewProductRepository(store)
	uow := NewUnitOfWork(store)
	ctx := context.Background()

	boom := errors.New("rejected")
	err := uow.Execute(ctx, func(ctx context.Context) error {
		seedProduct(t, products, 1)
		return boom
	})
	require.ErrorIs(t, err, boom)

	// The rolled-back insert does not leak its identifier.
	p := seedProduct(t, products, 1)
	assert.Equal(t, int64(1), p.ID())
}

func TestRepositories_ReturnCopies(t *testing.T) {
	store := NewStore()
	products := NewProductRepository(store)
	ctx := context.Background()

	p := seedProduct(t, products, 10)

	// Mutating a loaded entity without Update must not change the store.
	loaded, err := products.FindByID(ctx, p.ID())
	require.NoError(t, err)
	require.NoError(t, loaded.DebitStock(9))

	fresh, err := products.FindByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, 10, fresh.Stock())
}
