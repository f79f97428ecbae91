package shared

import "context"

// UnitOfWork wraps a function in a transaction boundary. Implementations
// inject the live transaction into the context so repositories called inside
// fn share it; any error from fn rolls everything back before it is
// returned. No retries happen here: every failure is terminal for the
// request and the caller must resubmit.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}
