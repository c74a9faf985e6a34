//go:build integration

package userRepository

import (
	"blogapi/internal/api/user"
	"blogapi/internal/entity"
	"blogapi/internal/storetest/pgtest"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(email, name string, status entity.UserStatus) entity.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return entity.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Role:      entity.RoleUser,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUserRepository_Postgres(t *testing.T) {
	db := pgtest.SetupPostgres(t)
	logger, _ := test.NewNullLogger()
	repo := New(db, logger)
	ctx := context.Background()

	client, err := repo.NewClient(false)
	require.NoError(t, err)

	bob := newTestUser("bob@example.com", "Bob", entity.UserActive)
	ann := newTestUser("ann@example.com", "Ann", entity.UserInactive)
	require.NoError(t, client.Users.CreateUser(ctx, bob))
	require.NoError(t, client.Users.CreateUser(ctx, ann))

	t.Run("unique email", func(t *testing.T) {
		err := client.Users.CreateUser(ctx, newTestUser("bob@example.com", "Bob 2", entity.UserActive))
		assert.ErrorIs(t, err, users.ErrEmailAlreadyExists)
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := client.Users.GetByID(ctx, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, bob.Email, got.Email)

		_, err = client.Users.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, users.ErrUserNotFound)
	})

	t.Run("list ordered by name", func(t *testing.T) {
		list, err := client.Users.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Ann", list[0].Name)

		active, err := client.Users.GetByStatus(ctx, entity.UserActive)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, "Bob", active[0].Name)
	})

	t.Run("update", func(t *testing.T) {
		bob.Name = "Robert"
		require.NoError(t, client.Users.UpdateUser(ctx, bob))

		ann.Email = "bob@example.com"
		assert.ErrorIs(t, client.Users.UpdateUser(ctx, ann), users.ErrEmailAlreadyExists)

		ghost := newTestUser("ghost@example.com", "Ghost", entity.UserActive)
		assert.ErrorIs(t, client.Users.UpdateUser(ctx, ghost), users.ErrUserNotFound)
	})

	t.Run("delete in rolled back transaction", func(t *testing.T) {
		tx, err := repo.NewClient(true)
		require.NoError(t, err)

		_, err = tx.Likes.DeleteLikesByUser(ctx, bob.ID)
		require.NoError(t, err)
		require.NoError(t, tx.Users.DeleteUser(ctx, bob.ID))
		require.NoError(t, tx.Rollback())

		_, err = client.Users.GetByID(ctx, bob.ID)
		assert.NoError(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, client.Users.DeleteUser(ctx, bob.ID))
		assert.ErrorIs(t, client.Users.DeleteUser(ctx, bob.ID), users.ErrUserNotFound)
	})
}
