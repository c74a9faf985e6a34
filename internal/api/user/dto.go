package users

import (
	"blogapi/internal/entity"
	"time"
)

type CreateUserRequest struct {
	Email  string `json:"email" validate:"required,email,max=255"`
	Name   string `json:"name" validate:"required,max=255"`
	Role   string `json:"role" validate:"omitempty,oneof=user admin"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateUserRequest only touches the fields that are present in the payload.
type UpdateUserRequest struct {
	Email  *string `json:"email" validate:"omitempty,email,max=255"`
	Name   *string `json:"name" validate:"omitempty,min=1,max=255"`
	Role   *string `json:"role" validate:"omitempty,oneof=user admin"`
	Status *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		Status:    string(user.Status),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func NewUserListResponse(list []entity.User) []UserResponse {
	res := make([]UserResponse, 0, len(list))
	for _, user := range list {
		res = append(res, NewUserResponse(user))
	}
	return res
}
