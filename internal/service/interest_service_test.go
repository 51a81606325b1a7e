package service

import (
	"context"
	"testing"

	"content-discovery-be/internal/dto"
	"content-discovery-be/internal/entity"
	"content-discovery-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterestCreateDefaults(t *testing.T) {
	svc := NewInterestService(memory.NewInterestRepository())
	userId := uuid.New()

	created, err := svc.Create(context.Background(), userId, &dto.CreateInterestRequest{Name: "Rust"})
	require.NoError(t, err)

	assert.Equal(t, "Rust", created.Name)
	assert.Equal(t, userId, created.UserId)
	assert.True(t, created.Active)
	assert.True(t, created.DiscoveryEnabled)
	assert.Zero(t, created.Priority)
	assert.Empty(t, created.CustomFilters.Include)
	assert.Empty(t, created.CustomFilters.Exclude)
}

func TestInterestCreateWithOptions(t *testing.T) {
	svc := NewInterestService(memory.NewInterestRepository())
	priority := 4

	created, err := svc.Create(context.Background(), uuid.New(), &dto.CreateInterestRequest{
		Name:     "Databases",
		Priority: &priority,
		CustomFilters: &entity.CustomFilters{
			Include: []string{"postgres"},
			Exclude: []string{"ads"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, created.Priority)
	assert.Equal(t, []string{"postgres"}, created.CustomFilters.Include)
}

func TestInterestDuplicateNamesAllowed(t *testing.T) {
	svc := NewInterestService(memory.NewInterestRepository())
	userId := uuid.New()
	ctx := context.Background()

	_, err := svc.Create(ctx, userId, &dto.CreateInterestRequest{Name: "Go"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, userId, &dto.CreateInterestRequest{Name: "Go"})
	require.NoError(t, err)

	all, err := svc.GetAll(ctx, userId)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestInterestUpdateMergesFields(t *testing.T) {
	svc := NewInterestService(memory.NewInterestRepository())
	userId := uuid.New()
	ctx := context.Background()

	priority := 2
	created, err := svc.Create(ctx, userId, &dto.CreateInterestRequest{Name: "Go", Priority: &priority})
	require.NoError(t, err)

	inactive := false
	updated, err := svc.Update(ctx, userId, &dto.UpdateInterestRequest{
		Id:     created.Id,
		Active: &inactive,
	})
	require.NoError(t, err)

	assert.False(t, updated.Active)
	// Untouched fields survive the merge.
	assert.Equal(t, "Go", updated.Name)
	assert.Equal(t, 2, updated.Priority)
	assert.True(t, updated.DiscoveryEnabled)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestInterestUpdateUnknownId(t *testing.T) {
	svc := NewInterestService(memory.NewInterestRepository())

	_, err := svc.Update(context.Background(), uuid.New(), &dto.UpdateInterestRequest{Id: uuid.New()})
	assert.ErrorIs(t, err, ErrInterestNotFound)
}

func TestInterestDelete(t *testing.T) {
	svc := NewInterestService(memory.NewInterestRepository())
	userId := uuid.New()
	ctx := context.Background()

	created, err := svc.Create(ctx, userId, &dto.CreateInterestRequest{Name: "Go"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, userId, created.Id))

	all, err := svc.GetAll(ctx, userId)
	require.NoError(t, err)
	assert.Empty(t, all)

	assert.ErrorIs(t, svc.Delete(ctx, userId, created.Id), ErrInterestNotFound)
}

func TestInterestsAreScopedPerUser(t *testing.T) {
	repo := memory.NewInterestRepository()
	svc := NewInterestService(repo)
	ctx := context.Background()

	alice := uuid.New()
	bob := uuid.New()

	created, err := svc.Create(ctx, alice, &dto.CreateInterestRequest{Name: "Go"})
	require.NoError(t, err)

	bobList, err := svc.GetAll(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, bobList)

	// Bob cannot touch Alice's interest.
	assert.ErrorIs(t, svc.Delete(ctx, bob, created.Id), ErrInterestNotFound)
}
