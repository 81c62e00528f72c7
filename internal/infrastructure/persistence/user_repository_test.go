package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
)

func TestGormUserRepository_SaveAndFind(t *testing.T) {
	repo := NewGormUserRepository(newTestDB(t))
	ctx := context.Background()

	user, err := identity.NewUser("Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "alice@example.com", found.Email)

	found, err = repo.FindByEmail(ctx, "  Alice@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestGormUserRepository_FindByID_NotFound(t *testing.T) {
	repo := NewGormUserRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormUserRepository_ExistsByEmail(t *testing.T) {
	repo := NewGormUserRepository(newTestDB(t))
	ctx := context.Background()

	user, err := identity.NewUser("Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, user))

	exists, err := repo.ExistsByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGormUserRepository_Delete(t *testing.T) {
	repo := NewGormUserRepository(newTestDB(t))
	ctx := context.Background()

	user, err := identity.NewUser("Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, user))

	require.NoError(t, repo.Delete(ctx, user.ID))
	assert.ErrorIs(t, repo.Delete(ctx, user.ID), shared.ErrNotFound)

	_, err = repo.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormUserRepository_FindAll_Search(t *testing.T) {
	repo := NewGormUserRepository(newTestDB(t))
	ctx := context.Background()

	for _, u := range []struct{ name, email string }{
		{"Alice", "alice@example.com"},
		{"Bob", "bob@example.com"},
		{"Alicia", "alicia@example.com"},
	} {
		user, err := identity.NewUser(u.name, u.email, "password123")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, user))
	}

	filter := shared.DefaultFilter()
	filter.Search = "alic"

	users, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	count, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
