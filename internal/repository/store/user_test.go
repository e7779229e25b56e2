package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imageshare/imageshare-server/internal/model"
)

func TestUserRepository_Create(t *testing.T) {
	conn := newTestConnection(t)
	ctx := context.Background()

	user := seedUser(t, conn, "alice")
	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	got, err := NewUserRepository(conn).GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
}

func TestUserRepository_Create_MissingField(t *testing.T) {
	conn := newTestConnection(t)

	_, err := NewUserRepository(conn).Create(context.Background(), model.User{
		Username: "incomplete",
	})
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	conn := newTestConnection(t)

	seedUser(t, conn, "alice")

	_, err := NewUserRepository(conn).Create(context.Background(), model.User{
		Username:     "alice",
		PasswordHash: "$2a$10$hashhashhashhashhashha",
		FirstName:    "Other",
		LastName:     "Person",
		City:         "Porto",
		Country:      "Portugal",
	})
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	conn := newTestConnection(t)

	_, err := NewUserRepository(conn).GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_GetByUsername_NotFound(t *testing.T) {
	conn := newTestConnection(t)

	_, err := NewUserRepository(conn).GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_GetByIDs(t *testing.T) {
	conn := newTestConnection(t)
	ctx := context.Background()

	alice := seedUser(t, conn, "alice")
	bob := seedUser(t, conn, "bob")
	carol := seedUser(t, conn, "carol")

	repo := NewUserRepository(conn)

	// Order is by id regardless of argument order; missing ids are
	// skipped.
	users, err := repo.GetByIDs(ctx, []uint{carol.ID, alice.ID, bob.ID, 999})
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, alice.ID, users[0].ID)
	assert.Equal(t, bob.ID, users[1].ID)
	assert.Equal(t, carol.ID, users[2].ID)

	users, err = repo.GetByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRepository_First(t *testing.T) {
	conn := newTestConnection(t)
	ctx := context.Background()

	seedUser(t, conn, "alice")
	bob := seedUser(t, conn, "bob")

	repo := NewUserRepository(conn)

	got, err := repo.First(ctx, map[string]any{"username": "bob"})
	require.NoError(t, err)
	assert.Equal(t, bob.ID, got.ID)

	// Unknown keys are dropped, leaving the city filter in effect.
	got, err = repo.First(ctx, map[string]any{"city": "Lisbon", "password_hash": "probe"})
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = repo.First(ctx, map[string]any{"username": "ghost"})
	assert.ErrorIs(t, err, model.ErrNotFound)
}
