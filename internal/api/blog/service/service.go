package blogService

import (
	"blogapi/internal/api/blog"
	blogsRepository "blogapi/internal/api/blog/repository"
	userRepository "blogapi/internal/api/user/repository"
	"blogapi/internal/entity"
	"blogapi/pkg/utils"
	"context"

	"github.com/sirupsen/logrus"
)

type IBlogsService interface {
	CreateBlog(ctx context.Context, req blogs.CreateBlogRequest) (entity.Blog, error)
	GetBlogByID(ctx context.Context, id string) (entity.Blog, error)
	// GetBlogsForUser lists the blogs visible to userID; an empty userID lists every blog.
	GetBlogsForUser(ctx context.Context, userID string) ([]entity.Blog, error)
	GetActiveBlogsForUser(ctx context.Context, userID string) ([]entity.Blog, error)
	UpdateBlog(ctx context.Context, id string, req blogs.UpdateBlogRequest) (entity.Blog, error)
	DeleteBlog(ctx context.Context, id string) error
	LikeBlog(ctx context.Context, blogID, userID string) (entity.Blog, error)
	UnlikeBlog(ctx context.Context, blogID, userID string) (entity.Blog, error)
}

type blogsService struct {
	log       *logrus.Logger
	blogsRepo blogsRepository.Repository
	usersRepo userRepository.Repository
	utils     utils.IUtils
}

func NewBlogsService(
	log *logrus.Logger,
	blogsRepo blogsRepository.Repository,
	usersRepo userRepository.Repository,
	utils utils.IUtils,
) IBlogsService {
	return &blogsService{
		log:       log,
		blogsRepo: blogsRepo,
		usersRepo: usersRepo,
		utils:     utils,
	}
}
