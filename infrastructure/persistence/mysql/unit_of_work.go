package mysql

import (
	"context"
	"fmt"

	"comedor/domain/shared"
	"comedor/infrastructure/persistence"

	"gorm.io/gorm"
)

// UnitOfWork wraps business logic in a database transaction. The transaction
// is injected into the context; repositories pick it up through
// persistence.TxFromContext. Any error from fn rolls back everything,
// including stock debits persisted earlier in the same call. No retries.
type UnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates the transactional unit of work.
func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// Execute begins a transaction, runs fn with it in the context and commits,
// rolling back on any error.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	if err := fn(persistence.ContextWithTx(ctx, tx)); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

var _ shared.UnitOfWork = (*UnitOfWork)(nil)
