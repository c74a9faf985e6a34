package users

import "blogapi/pkg/response"

var (
	ErrUserNotFound       = response.NotFound("user not found")
	ErrEmailAlreadyExists = response.Conflict("email already exists")
	ErrCreateUser         = response.Internal("failed to create user")
	ErrGetUsers           = response.Internal("failed to fetch users")
	ErrUpdateUser         = response.Internal("failed to update user")
	ErrDeleteUser         = response.Internal("failed to delete user")
)
