package userService

import (
	"blogapi/internal/api/user"
	"blogapi/internal/entity"
	contextPkg "blogapi/pkg/context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *usersService) CreateUser(ctx context.Context, req users.CreateUserRequest) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.usersRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.User{}, users.ErrCreateUser
	}

	userID, err := s.utils.NewUUID()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate user ID")
		return entity.User{}, users.ErrCreateUser
	}

	now := time.Now().UTC()

	user := entity.User{
		ID:        userID,
		Email:     req.Email,
		Name:      req.Name,
		Role:      entity.RoleUser,
		Status:    entity.UserActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Role != "" {
		user.Role = entity.UserRole(req.Role)
	}
	if req.Status != "" {
		user.Status = entity.UserStatus(req.Status)
	}

	if err := repo.Users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, users.ErrEmailAlreadyExists) {
			return entity.User{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return entity.User{}, users.ErrCreateUser
	}

	return user, nil
}

func (s *usersService) GetAllUsers(ctx context.Context) ([]entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.usersRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, users.ErrGetUsers
	}

	list, err := repo.Users.GetAll(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get users")
		return nil, users.ErrGetUsers
	}

	return list, nil
}

func (s *usersService) GetActiveUsers(ctx context.Context) ([]entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.usersRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, users.ErrGetUsers
	}

	list, err := repo.Users.GetByStatus(ctx, entity.UserActive)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get active users")
		return nil, users.ErrGetUsers
	}

	return list, nil
}

func (s *usersService) GetUserByID(ctx context.Context, id string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.usersRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.User{}, users.ErrGetUsers
	}

	user, err := repo.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("User not found")
			return entity.User{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get user")
		return entity.User{}, users.ErrGetUsers
	}

	return user, nil
}

func (s *usersService) UpdateUser(ctx context.Context, id string, req users.UpdateUserRequest) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.usersRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.User{}, users.ErrUpdateUser
	}
	defer repo.Rollback()

	user, err := repo.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("User not found")
			return entity.User{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get user")
		return entity.User{}, users.ErrUpdateUser
	}

	applyUserUpdate(&user, req)
	user.UpdatedAt = time.Now().UTC()

	if err := repo.Users.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, users.ErrEmailAlreadyExists) || errors.Is(err, users.ErrUserNotFound) {
			return entity.User{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update user")
		return entity.User{}, users.ErrUpdateUser
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return entity.User{}, users.ErrUpdateUser
	}

	return user, nil
}

// DeleteUser removes the user's likes and then the user in one transaction.
// Blogs the user authored keep existing; the schema nulls their author.
func (s *usersService) DeleteUser(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.usersRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return users.ErrDeleteUser
	}
	defer repo.Rollback()

	detached, err := repo.Likes.DeleteLikesByUser(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to detach user likes")
		return users.ErrDeleteUser
	}

	if err := repo.Users.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("User not found")
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete user")
		return users.ErrDeleteUser
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return users.ErrDeleteUser
	}

	s.log.WithFields(logrus.Fields{
		"request_id":     requestID,
		"id":             id,
		"likes_detached": detached,
	}).Info("User deleted")

	return nil
}

func applyUserUpdate(user *entity.User, req users.UpdateUserRequest) {
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = entity.UserRole(*req.Role)
	}
	if req.Status != nil {
		user.Status = entity.UserStatus(*req.Status)
	}
}
