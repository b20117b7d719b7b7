package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jayxvj/k2k-world/internal/domain"
	"github.com/jayxvj/k2k-world/internal/repo"
)

func newCustomRequestRepo(t *testing.T) repo.CustomRequestRepo {
	return repo.NewCustomRequestRepo(newTestTx(t))
}

func customRequestFixture() domain.CustomRequest {
	return domain.CustomRequest{
		Name:        "Priya Sharma",
		Email:       "priya@example.com",
		Phone:       "+91 98765 43210",
		Destination: "Kashmir",
		TravelDates: domain.TravelDates{Start: "2026-10-01", End: "2026-10-07"},
		GroupSize:   4,
		Budget:      "50000-75000",
		Preferences: "Houseboat stay",
		Message:     "Looking for a family trip with houseboats included.",
	}
}

func TestCustomRequestRepo_Create(t *testing.T) {
	r := newCustomRequestRepo(t)
	ctx := context.Background()

	input := customRequestFixture()
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.TravelDates, got.TravelDates)
	assert.Equal(t, domain.StatusNew, got.Status, "new leads always start at 'new'")
	assert.False(t, got.CreatedAt.IsZero())
}

// TestCustomRequestRepo_Create_IgnoresSubmittedStatus verifies the status is
// server-assigned even if a caller smuggles one in.
func TestCustomRequestRepo_Create_IgnoresSubmittedStatus(t *testing.T) {
	r := newCustomRequestRepo(t)
	ctx := context.Background()

	input := customRequestFixture()
	input.Status = domain.StatusClosed

	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusNew, got.Status)
}

func TestCustomRequestRepo_List_NewestFirst(t *testing.T) {
	r := newCustomRequestRepo(t)
	ctx := context.Background()

	first, err := r.Create(ctx, customRequestFixture())
	require.NoError(t, err)
	second := customRequestFixture()
	second.Name = "Rahul Verma"
	latest, err := r.Create(ctx, second)
	require.NoError(t, err)

	got, err := r.List(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	// created_at DESC; ties resolved by insert order are fine either way,
	// so assert by timestamp rather than position when they differ.
	if latest.CreatedAt.After(first.CreatedAt) {
		assert.Equal(t, latest.ID, got[0].ID)
	}
}

func TestCustomRequestRepo_UpdateStatus(t *testing.T) {
	r := newCustomRequestRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, customRequestFixture())
	require.NoError(t, err)

	require.NoError(t, r.UpdateStatus(ctx, created.ID, domain.StatusInProgress))
	// Closed leads can be reopened.
	require.NoError(t, r.UpdateStatus(ctx, created.ID, domain.StatusClosed))
	require.NoError(t, r.UpdateStatus(ctx, created.ID, domain.StatusNew))

	got, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.StatusNew, got[0].Status)
	assert.False(t, got[0].UpdatedAt.Before(created.UpdatedAt))
}

func TestCustomRequestRepo_UpdateStatus_NotFound(t *testing.T) {
	r := newCustomRequestRepo(t)

	err := r.UpdateStatus(context.Background(), uuid.New(), domain.StatusClosed)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
