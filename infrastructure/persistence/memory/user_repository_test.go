package memory

import (
	"context"
	"errors"
	"testing"

	"comedor/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_FindByEmail(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)
	ctx := context.Background()

	email, err := user.NewEmail("maria@example.com")
	require.NoError(t, err)
	u, err := user.NewUser("Maria", "Gomez", email, "", "$2a$fakehash", user.RoleCustomer)
	require.NoError(t, err)
	require.NoError(t, users.Insert(ctx, u))

	found, err := users.FindByEmail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, u.ID(), found.ID())
}

func TestUserRepository_FindByEmailUnknown(t *testing.T) {
	store := NewStore()
	users := NewUserRepository(store)

	email, err := user.NewEmail("nobody@example.com")
	require.NoError(t, err)

	_, err = users.FindByEmail(context.Background(), email)
	require.ErrorIs(t, err, user.ErrUserNotFound)

	// Same texture as every other not-found path: a creation-point stack.
	var stacker interface{ Stack() []string }
	require.True(t, errors.As(err, &stacker))
	assert.NotEmpty(t, stacker.Stack())
}
