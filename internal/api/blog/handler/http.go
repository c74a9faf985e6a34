package blogHandler

import (
	blogsService "blogapi/internal/api/blog/service"
	"blogapi/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogsHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	blogsService blogsService.IBlogsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs blogsService.IBlogsService,
) *BlogsHandler {
	return &BlogsHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		blogsService: bs,
	}
}

func (h *BlogsHandler) Start(srv fiber.Router) {
	blogs := srv.Group("/blogs")

	blogs.Post("", h.CreateBlog)
	blogs.Get("", h.GetBlogs)
	blogs.Get("/active", h.GetActiveBlogs)
	blogs.Get("/:id", h.GetBlogByID)
	blogs.Put("/:id", h.UpdateBlog)
	blogs.Delete("/:id", h.DeleteBlog)

	// Like relation, the liking user comes from ?userId=
	blogs.Post("/:id/like", h.LikeBlog)
	blogs.Delete("/:id/like", h.UnlikeBlog)
}
