package user

import "context"

// Repository persists users. Email lookups are case-insensitive because
// Email normalizes on construction.
type Repository interface {
	Insert(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error

	// FindByID loads one user, or ErrUserNotFound.
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindByEmail loads one user by normalized email, or ErrUserNotFound.
	FindByEmail(ctx context.Context, email Email) (*User, error)

	// EmailExists reports whether the normalized email is registered.
	EmailExists(ctx context.Context, email Email) (bool, error)
}

// AddressRepository persists delivery addresses.
type AddressRepository interface {
	Insert(ctx context.Context, a *Address) error

	// FindByID loads one address, or ErrAddressNotFound.
	FindByID(ctx context.Context, id int64) (*Address, error)

	// FindByUserID lists a user's addresses.
	FindByUserID(ctx context.Context, userID int64) ([]*Address, error)
}
