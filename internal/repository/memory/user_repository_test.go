package memory

import (
	"context"
	"testing"
	"time"

	"content-discovery-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(email string) *entity.User {
	now := time.Now()
	return &entity.User{
		Id:        uuid.New(),
		Email:     email,
		Username:  "tester",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUserRepositoryEmailLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	user := newTestUser("alice@example.com")
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.FindByEmail(ctx, "ALICE@Example.COM")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.Id, found.Id)
}

func TestUserRepositoryUpdateReindexesEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	user := newTestUser("old@example.com")
	require.NoError(t, repo.Create(ctx, user))

	// Profile updates mutate the stored record in place before persisting.
	user.Email = "new@example.com"
	require.NoError(t, repo.Update(ctx, user))

	stale, err := repo.FindByEmail(ctx, "old@example.com")
	require.NoError(t, err)
	assert.Nil(t, stale)

	found, err := repo.FindByEmail(ctx, "new@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.Id, found.Id)

	// The freed address can now belong to someone else.
	other := newTestUser("old@example.com")
	require.NoError(t, repo.Create(ctx, other))

	reclaimed, err := repo.FindByEmail(ctx, "old@example.com")
	require.NoError(t, err)
	require.NotNil(t, reclaimed)
	assert.Equal(t, other.Id, reclaimed.Id)
}

func TestUserRepositoryUpdateSameEmailKeepsIndex(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	user := newTestUser("stable@example.com")
	require.NoError(t, repo.Create(ctx, user))

	user.Username = "renamed"
	require.NoError(t, repo.Update(ctx, user))

	found, err := repo.FindByEmail(ctx, "stable@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "renamed", found.Username)
}
