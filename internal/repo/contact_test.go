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

func newContactRepo(t *testing.T) repo.ContactRepo {
	return repo.NewContactRepo(newTestTx(t))
}

func contactFixture() domain.Contact {
	return domain.Contact{
		Name:    "Rahul Verma",
		Email:   "rahul@example.com",
		Phone:   "+91 91234 56789",
		Subject: "Honeymoon packages",
		Message: "Do you have any winter honeymoon packages for Manali?",
	}
}

func TestContactRepo_Create(t *testing.T) {
	r := newContactRepo(t)
	ctx := context.Background()

	input := contactFixture()
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, input.Subject, got.Subject)
	assert.Equal(t, domain.StatusNew, got.Status)
}

func TestContactRepo_Create_EmptyPhone(t *testing.T) {
	r := newContactRepo(t)
	ctx := context.Background()

	input := contactFixture()
	input.Phone = "" // phone is optional on the contact form

	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.Empty(t, got.Phone)
}

func TestContactRepo_List(t *testing.T) {
	r := newContactRepo(t)
	ctx := context.Background()

	_, err := r.Create(ctx, contactFixture())
	require.NoError(t, err)
	_, err = r.Create(ctx, contactFixture())
	require.NoError(t, err)

	got, err := r.List(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestContactRepo_UpdateStatus(t *testing.T) {
	r := newContactRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, contactFixture())
	require.NoError(t, err)

	require.NoError(t, r.UpdateStatus(ctx, created.ID, domain.StatusClosed))

	got, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.StatusClosed, got[0].Status)
}

func TestContactRepo_UpdateStatus_NotFound(t *testing.T) {
	r := newContactRepo(t)

	err := r.UpdateStatus(context.Background(), uuid.New(), domain.StatusInProgress)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
