package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail_Normalizes(t *testing.T) {
	e, err := NewEmail("  Maria.Gomez@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "maria.gomez@example.com", e.Value())
}

func TestNewEmail_CaseInsensitiveEquality(t *testing.T) {
	a, err := NewEmail("maria@example.com")
	require.NoError(t, err)
	b, err := NewEmail("MARIA@EXAMPLE.COM")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
}

func TestNewEmail_Invalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "no-at-sign", "@example.com", "maria@", "maria@nodot"} {
		_, err := NewEmail(raw)
		assert.ErrorIs(t, err, ErrInvalidEmail, "raw=%q", raw)
	}
}

func newTestUser(t *testing.T) *User {
	t.Helper()
	email, err := NewEmail("maria@example.com")
	require.NoError(t, err)
	u, err := NewUser("Maria", "Gomez", email, "809-555-0100", "$2a$fakehash", RoleCustomer)
	require.NoError(t, err)
	return u
}

func TestNewUser_Validation(t *testing.T) {
	email, err := NewEmail("maria@example.com")
	require.NoError(t, err)

	_, err = NewUser("", "Gomez", email, "", "$2a$fakehash", RoleCustomer)
	assert.ErrorIs(t, err, ErrInvalidUser)

	_, err = NewUser("Maria", "Gomez", email, "", "", RoleCustomer)
	assert.ErrorIs(t, err, ErrInvalidUser)
}

func TestUser_StartsActive(t *testing.T) {
	u := newTestUser(t)
	assert.True(t, u.IsActive())
	assert.Nil(t, u.LastAccessAt())
	assert.False(t, u.IsAdministrator())
}

func TestUser_FullName(t *testing.T) {
	u := newTestUser(t)
	assert.Equal(t, "Maria Gomez", u.FullName())

	email, err := NewEmail("solo@example.com")
	require.NoError(t, err)
	single, err := NewUser("Cher", "", email, "", "$2a$fakehash", RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, "Cher", single.FullName())
}

func TestUser_RecordAccess(t *testing.T) {
	u := newTestUser(t)
	u.RecordAccess()
	require.NotNil(t, u.LastAccessAt())
}

func TestUser_DeactivateActivate(t *testing.T) {
	u := newTestUser(t)

	u.Deactivate()
	assert.False(t, u.IsActive())

	u.Activate()
	assert.True(t, u.IsActive())
}

func TestNewAddress_Validation(t *testing.T) {
	_, err := NewAddress(1, "", "Santo Domingo", "")
	assert.ErrorIs(t, err, ErrInvalidUser)

	_, err = NewAddress(1, "Calle 5 #12", "", "")
	assert.ErrorIs(t, err, ErrInvalidUser)

	a, err := NewAddress(1, "Calle 5 #12", "Santo Domingo", "blue gate")
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.UserID())
	assert.Equal(t, "blue gate", a.Reference())
}
