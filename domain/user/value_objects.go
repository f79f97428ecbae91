package user

import "strings"

// Email is a value object normalized to lower case, so uniqueness checks are
// case-insensitive by construction.
type Email struct {
	value string
}

// NewEmail validates and normalizes an email address.
func NewEmail(raw string) (Email, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return Email{}, NewInvalidEmailError(raw, "email is required")
	}
	at := strings.Index(v, "@")
	if at <= 0 || at == len(v)-1 {
		return Email{}, NewInvalidEmailError(raw, "email format is invalid")
	}
	if !strings.Contains(v[at+1:], ".") {
		return Email{}, NewInvalidEmailError(raw, "email domain is invalid")
	}
	return Email{value: v}, nil
}

// RebuildEmail wraps an already-normalized address loaded from storage.
// Repository use only.
func RebuildEmail(stored string) Email {
	return Email{value: stored}
}

// Value returns the normalized address.
func (e Email) Value() string {
	return e.value
}

// Equals compares two normalized addresses.
func (e Email) Equals(other Email) bool {
	return e.value == other.value
}

func (e Email) String() string {
	return e.value
}
