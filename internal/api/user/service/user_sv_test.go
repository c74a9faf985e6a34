package userService

import (
	"blogapi/internal/api/user"
	"blogapi/internal/entity"
	"blogapi/internal/storetest"
	"blogapi/pkg/utils"
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUsersService(t *testing.T) (IUsersService, *storetest.Store) {
	t.Helper()

	logger, _ := test.NewNullLogger()
	store := storetest.New()
	return NewUsersService(logger, store.UsersRepository(), utils.New()), store
}

func createTestUser(t *testing.T, svc IUsersService, email, name string) entity.User {
	t.Helper()

	user, err := svc.CreateUser(context.Background(), users.CreateUserRequest{
		Email: email,
		Name:  name,
	})
	require.NoError(t, err)
	return user
}

func strPtr(s string) *string {
	return &s
}

func TestCreateUser_AppliesDefaults(t *testing.T) {
	svc, _ := setupUsersService(t)

	user := createTestUser(t, svc, "ann@example.com", "Ann")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, entity.UserActive, user.Status)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestCreateUser_KeepsExplicitRoleAndStatus(t *testing.T) {
	svc, _ := setupUsersService(t)

	user, err := svc.CreateUser(context.Background(), users.CreateUserRequest{
		Email:  "root@example.com",
		Name:   "Root",
		Role:   "admin",
		Status: "inactive",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.Equal(t, entity.UserInactive, user.Status)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	svc, _ := setupUsersService(t)
	createTestUser(t, svc, "ann@example.com", "Ann")

	_, err := svc.CreateUser(context.Background(), users.CreateUserRequest{
		Email: "ann@example.com",
		Name:  "Other Ann",
	})

	assert.ErrorIs(t, err, users.ErrEmailAlreadyExists)
}

func TestCreateUser_StoreFailureIsHidden(t *testing.T) {
	svc, store := setupUsersService(t)
	store.FailOn("CreateUser", storetest.ErrInjected)

	_, err := svc.CreateUser(context.Background(), users.CreateUserRequest{
		Email: "ann@example.com",
		Name:  "Ann",
	})

	assert.ErrorIs(t, err, users.ErrCreateUser)
	assert.NotErrorIs(t, err, storetest.ErrInjected)
}

func TestGetAllUsers_OrderedByName(t *testing.T) {
	svc, _ := setupUsersService(t)
	createTestUser(t, svc, "c@example.com", "Carol")
	createTestUser(t, svc, "a@example.com", "Alice")
	createTestUser(t, svc, "b@example.com", "Bob")

	list, err := svc.GetAllUsers(context.Background())
	require.NoError(t, err)

	require.Len(t, list, 3)
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, []string{list[0].Name, list[1].Name, list[2].Name})
}

func TestGetActiveUsers_SkipsInactive(t *testing.T) {
	svc, _ := setupUsersService(t)
	createTestUser(t, svc, "a@example.com", "Alice")
	_, err := svc.CreateUser(context.Background(), users.CreateUserRequest{
		Email:  "b@example.com",
		Name:   "Bob",
		Status: "inactive",
	})
	require.NoError(t, err)

	list, err := svc.GetActiveUsers(context.Background())
	require.NoError(t, err)

	require.Len(t, list, 1)
	assert.Equal(t, "Alice", list[0].Name)
}

func TestGetUserByID_NotFound(t *testing.T) {
	svc, _ := setupUsersService(t)

	_, err := svc.GetUserByID(context.Background(), "00000000-0000-0000-0000-000000000000")

	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestUpdateUser_OnlyTouchesPresentFields(t *testing.T) {
	svc, _ := setupUsersService(t)
	user := createTestUser(t, svc, "ann@example.com", "Ann")
	time.Sleep(time.Millisecond)

	updated, err := svc.UpdateUser(context.Background(), user.ID, users.UpdateUserRequest{
		Name: strPtr("Annie"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Annie", updated.Name)
	assert.Equal(t, "ann@example.com", updated.Email)
	assert.Equal(t, entity.RoleUser, updated.Role)
	assert.True(t, updated.UpdatedAt.After(user.UpdatedAt))

	fetched, err := svc.GetUserByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Annie", fetched.Name)
}

func TestUpdateUser_DuplicateEmailRollsBack(t *testing.T) {
	svc, _ := setupUsersService(t)
	createTestUser(t, svc, "ann@example.com", "Ann")
	bob := createTestUser(t, svc, "bob@example.com", "Bob")

	_, err := svc.UpdateUser(context.Background(), bob.ID, users.UpdateUserRequest{
		Email: strPtr("ann@example.com"),
		Name:  strPtr("Bobby"),
	})
	assert.ErrorIs(t, err, users.ErrEmailAlreadyExists)

	fetched, err := svc.GetUserByID(context.Background(), bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", fetched.Name)
	assert.Equal(t, "bob@example.com", fetched.Email)
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc, _ := setupUsersService(t)

	_, err := svc.UpdateUser(context.Background(), "00000000-0000-0000-0000-000000000000", users.UpdateUserRequest{
		Name: strPtr("Ghost"),
	})

	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc, _ := setupUsersService(t)

	err := svc.DeleteUser(context.Background(), "00000000-0000-0000-0000-000000000000")

	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestDeleteUser_RemovesUser(t *testing.T) {
	svc, _ := setupUsersService(t)
	user := createTestUser(t, svc, "ann@example.com", "Ann")

	require.NoError(t, svc.DeleteUser(context.Background(), user.ID))

	_, err := svc.GetUserByID(context.Background(), user.ID)
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestDeleteUser_FailureAfterDetachRollsBack(t *testing.T) {
	svc, store := setupUsersService(t)
	user := createTestUser(t, svc, "ann@example.com", "Ann")
	store.FailOn("DeleteUser", storetest.ErrInjected)

	err := svc.DeleteUser(context.Background(), user.ID)
	assert.ErrorIs(t, err, users.ErrDeleteUser)

	_, err = svc.GetUserByID(context.Background(), user.ID)
	assert.NoError(t, err)
}

func TestDeleteUser_BeginFailure(t *testing.T) {
	svc, store := setupUsersService(t)
	user := createTestUser(t, svc, "ann@example.com", "Ann")
	store.FailOn("Begin", storetest.ErrInjected)

	err := svc.DeleteUser(context.Background(), user.ID)

	assert.ErrorIs(t, err, users.ErrDeleteUser)
}
