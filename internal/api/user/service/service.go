package userService

import (
	"blogapi/internal/api/user"
	userRepository "blogapi/internal/api/user/repository"
	"blogapi/internal/entity"
	"blogapi/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type IUsersService interface {
	CreateUser(ctx context.Context, req users.CreateUserRequest) (entity.User, error)
	GetAllUsers(ctx context.Context) ([]entity.User, error)
	GetActiveUsers(ctx context.Context) ([]entity.User, error)
	GetUserByID(ctx context.Context, id string) (entity.User, error)
	UpdateUser(ctx context.Context, id string, req users.UpdateUserRequest) (entity.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type usersService struct {
	log       *logrus.Logger
	usersRepo userRepository.Repository
	utils     utils.IUtils
}

func NewUsersService(
	log *logrus.Logger,
	usersRepo userRepository.Repository,
	utils utils.IUtils,
) IUsersService {
	return &usersService{
		log:       log,
		usersRepo: usersRepo,
		utils:     utils,
	}
}
