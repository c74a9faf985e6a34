package config

import (
	"blogapi/database/postgres"
	blogHandler "blogapi/internal/api/blog/handler"
	blogRepository "blogapi/internal/api/blog/repository"
	blogService "blogapi/internal/api/blog/service"
	userHandler "blogapi/internal/api/user/handler"
	userRepository "blogapi/internal/api/user/repository"
	userService "blogapi/internal/api/user/service"
	"blogapi/internal/middleware"
	"blogapi/pkg/utils"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	db         *sqlx.DB
	log        *logrus.Logger
	middleware middleware.Middleware
	validator  *validator.Validate
	utils      utils.IUtils
	handlers   []handler

	usersRepo userRepository.Repository
	blogsRepo blogRepository.Repository
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.validator == nil {
		server.validator = NewValidator()
	}
	if server.utils == nil {
		server.utils = utils.New()
	}
	if server.middleware == nil {
		server.middleware = middleware.New(server.log)
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

// WithDatabase connects to postgres using the DB_* environment and, when migrate
// is set, applies the schema before any handler is registered.
func WithDatabase(migrate bool) ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}

		if migrate {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := postgres.Migrate(ctx, db); err != nil {
				db.Close()
				return fmt.Errorf("failed to migrate database: %w", err)
			}
			if s.log != nil {
				s.log.Info("Database schema is up to date")
			}
		}

		s.db = db
		s.usersRepo = userRepository.New(db, s.log)
		s.blogsRepo = blogRepository.New(db, s.log)
		return nil
	}
}

// WithRepositories replaces the postgres backed repositories.
func WithRepositories(users userRepository.Repository, blogs blogRepository.Repository) ServerOption {
	return func(s *Server) error {
		s.usersRepo = users
		s.blogsRepo = blogs
		return nil
	}
}

func WithMiddleware(opts ...middleware.Option) ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, opts...)
		return nil
	}
}

// WithUtils replaces the id generators handed to the services.
func WithUtils(u utils.IUtils) ServerOption {
	return func(s *Server) error {
		if u == nil {
			return fmt.Errorf("utils must not be nil")
		}
		s.utils = u
		return nil
	}
}

func (s *Server) RegisterHandler() error {
	if s.usersRepo == nil || s.blogsRepo == nil {
		return fmt.Errorf("repositories are required, use WithDatabase or WithRepositories")
	}

	// User Domain
	userServices := userService.NewUsersService(s.log, s.usersRepo, s.utils)
	userHandlers := userHandler.New(s.log, s.validator, s.middleware, userServices)

	// Blog Domain
	blogServices := blogService.NewBlogsService(s.log, s.blogsRepo, s.usersRepo, s.utils)
	blogHandlers := blogHandler.New(s.log, s.validator, s.middleware, blogServices)

	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware)
	s.engine.Use(s.middleware.NewRateLimiter)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, userHandlers, blogHandlers)

	for _, h := range s.handlers {
		h.Start(s.engine)
	}

	return nil
}

// App exposes the configured fiber app, mainly for app.Test.
func (s *Server) App() *fiber.App {
	return s.engine
}

func (s *Server) Run() error {
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	s.log.Infof("Listening on :%s", port)

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	err := s.engine.ShutdownWithContext(ctx)

	if s.db != nil {
		if closeErr := s.db.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}

	return err
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
