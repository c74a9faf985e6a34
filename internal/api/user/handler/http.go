package userHandler

import (
	userService "blogapi/internal/api/user/service"
	"blogapi/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UsersHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	usersService userService.IUsersService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	us userService.IUsersService,
) *UsersHandler {
	return &UsersHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		usersService: us,
	}
}

func (h *UsersHandler) Start(srv fiber.Router) {
	users := srv.Group("/users")

	users.Post("", h.CreateUser)
	users.Get("", h.GetAllUsers)
	users.Get("/active", h.GetActiveUsers)
	users.Get("/:id", h.GetUserByID)
	users.Put("/:id", h.UpdateUser)
	users.Delete("/:id", h.DeleteUser)
}
