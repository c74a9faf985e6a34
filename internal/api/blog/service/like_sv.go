package blogService

import (
	"blogapi/internal/api/blog"
	"blogapi/internal/entity"
	contextPkg "blogapi/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// LikeBlog holds the blog's row lock while checking authorship, so an author
// change cannot land between the check and the insert.
func (s *blogsService) LikeBlog(ctx context.Context, blogID, userID string) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Blog{}, blogs.ErrLikeBlog
	}
	defer repo.Rollback()

	blog, err := repo.Blogs.LockBlog(ctx, blogID)
	if err != nil {
		return entity.Blog{}, s.domainOr(requestID, err, blogs.ErrLikeBlog, "Failed to get blog")
	}

	if _, err := s.resolveUser(ctx, userID); err != nil {
		return entity.Blog{}, s.domainOr(requestID, err, blogs.ErrLikeBlog, "Failed to resolve liking user")
	}

	if blog.IsAuthoredBy(userID) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"user_id":    userID,
		}).Warn("User tried to like own blog")
		return entity.Blog{}, blogs.ErrCannotLikeOwn
	}

	if err := repo.Likes.AddLike(ctx, blogID, userID); err != nil {
		return entity.Blog{}, s.domainOr(requestID, err, blogs.ErrLikeBlog, "Failed to like blog")
	}

	updated, err := s.loadBlog(ctx, repo, blogID)
	if err != nil {
		return entity.Blog{}, s.domainOr(requestID, err, blogs.ErrLikeBlog, "Failed to load liked blog")
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return entity.Blog{}, blogs.ErrLikeBlog
	}

	return updated, nil
}

func (s *blogsService) UnlikeBlog(ctx context.Context, blogID, userID string) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Blog{}, blogs.ErrUnlikeBlog
	}

	if _, err := repo.Blogs.GetBlogByID(ctx, blogID); err != nil {
		return entity.Blog{}, s.domainOr(requestID, err, blogs.ErrUnlikeBlog, "Failed to get blog")
	}

	if _, err := s.resolveUser(ctx, userID); err != nil {
		return entity.Blog{}, s.domainOr(requestID, err, blogs.ErrUnlikeBlog, "Failed to resolve unliking user")
	}

	if err := repo.Likes.RemoveLike(ctx, blogID, userID); err != nil {
		return entity.Blog{}, s.domainOr(requestID, err, blogs.ErrUnlikeBlog, "Failed to unlike blog")
	}

	updated, err := s.loadBlog(ctx, repo, blogID)
	if err != nil {
		return entity.Blog{}, s.domainOr(requestID, err, blogs.ErrUnlikeBlog, "Failed to load unliked blog")
	}

	return updated, nil
}
