package user

import (
	"errors"
	"fmt"

	"comedor/domain/shared"
)

var (
	// ErrUserNotFound: no user with the requested identifier.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserInactive: the account is deactivated and cannot place orders.
	ErrUserInactive = errors.New("user is not active")

	// ErrEmailExists: registration against an already-registered email.
	ErrEmailExists = errors.New("email already registered")

	// ErrInvalidEmail: the email failed validation.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrInvalidCredentials: login failed. Deliberately covers both unknown
	// email and wrong password so the message leaks nothing.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAddressNotFound: no address with the requested identifier.
	ErrAddressNotFound = errors.New("address not found")

	// ErrInvalidUser: a user or address attribute failed validation.
	ErrInvalidUser = errors.New("invalid user")
)

// NewUserNotFoundError builds a not-found error for a user ID.
func NewUserNotFoundError(userID int64) error {
	return &userError{
		sentinel: ErrUserNotFound,
		message:  fmt.Sprintf("user %d not found", userID),
		stack:    shared.CaptureStack(3),
	}
}

// NewUserNotFoundByEmailError builds a not-found error for an email lookup.
// The message never echoes the address; login maps this to the generic
// credentials failure anyway.
func NewUserNotFoundByEmailError() error {
	return &userError{
		sentinel: ErrUserNotFound,
		field:    "email",
		message:  "user not found",
		stack:    shared.CaptureStack(3),
	}
}

// NewUserInactiveError reports an operation attempted by a deactivated account.
func NewUserInactiveError(userID int64) error {
	return &userError{
		sentinel: ErrUserInactive,
		message:  fmt.Sprintf("user %d is not active", userID),
		stack:    shared.CaptureStack(3),
	}
}

// NewEmailExistsError reports a duplicate registration.
func NewEmailExistsError(email string) error {
	return &userError{
		sentinel: ErrEmailExists,
		field:    "email",
		message:  fmt.Sprintf("email %s is already registered", email),
		stack:    shared.CaptureStack(3),
	}
}

// NewInvalidEmailError reports a malformed email address.
func NewInvalidEmailError(raw, reason string) error {
	return &userError{
		sentinel: ErrInvalidEmail,
		field:    "email",
		message:  reason,
		stack:    shared.CaptureStack(3),
	}
}

// NewInvalidCredentialsError reports a failed login without saying why.
func NewInvalidCredentialsError() error {
	return &userError{
		sentinel: ErrInvalidCredentials,
		message:  "invalid credentials",
		stack:    shared.CaptureStack(3),
	}
}

// NewAddressNotFoundError builds a not-found error for an address ID.
func NewAddressNotFoundError(addressID int64) error {
	return &userError{
		sentinel: ErrAddressNotFound,
		message:  fmt.Sprintf("address %d not found", addressID),
		stack:    shared.CaptureStack(3),
	}
}

// NewInvalidUserError reports a validation failure on a field.
func NewInvalidUserError(field, reason string) error {
	return &userError{
		sentinel: ErrInvalidUser,
		field:    field,
		message:  reason,
		stack:    shared.CaptureStack(3),
	}
}

type userError struct {
	sentinel error
	field    string
	message  string
	stack    []uintptr
}

func (e *userError) Error() string {
	return e.message
}

func (e *userError) Unwrap() error {
	return e.sentinel
}

func (e *userError) Stack() []string {
	return shared.FormatStack(e.stack)
}
