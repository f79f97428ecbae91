package memory

import (
	"context"
	"sync"

	"comedor/domain/shared"
)

// UnitOfWork gives the in-memory store transactional semantics: the store is
// snapshotted before fn runs and restored if fn fails. Executions are
// serialized, which matches the single-writer reality of the dev setup.
type UnitOfWork struct {
	store *Store
	txMu  sync.Mutex
}

// NewUnitOfWork creates the unit of work over a store.
func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

// Execute runs fn, rolling the store back to its prior state on any error.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	u.txMu.Lock()
	defer u.txMu.Unlock()

	snap := u.store.takeSnapshot()
	if err := fn(ctx); err != nil {
		u.store.restoreSnapshot(snap)
		return err
	}
	return nil
}

var _ shared.UnitOfWork = (*UnitOfWork)(nil)
