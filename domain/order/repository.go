package order

import (
	"context"
	"time"
)

// Repository persists the Order aggregate. Implementations must load orders
// fully hydrated (with their line items); the workflow never works on a
// partial view. Inside a unit of work the repository uses the transaction
// carried by the context.
type Repository interface {
	// Insert stores a new order and its lines, assigning the identifier.
	Insert(ctx context.Context, o *Order) error

	// Update rewrites the order header; lines are immutable after creation.
	Update(ctx context.Context, o *Order) error

	// FindByID loads one order with its lines, or ErrOrderNotFound.
	FindByID(ctx context.Context, id int64) (*Order, error)

	// FindByUserID loads a user's orders, newest first.
	FindByUserID(ctx context.Context, userID int64) ([]*Order, error)

	// FindByStatus loads all orders currently in the given status.
	FindByStatus(ctx context.Context, status Status) ([]*Order, error)

	// FindForDay loads the orders placed on the calendar day of t (UTC).
	FindForDay(ctx context.Context, t time.Time) ([]*Order, error)
}
