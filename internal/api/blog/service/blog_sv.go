package blogService

import (
	"blogapi/internal/api/blog"
	blogsRepository "blogapi/internal/api/blog/repository"
	"blogapi/internal/entity"
	contextPkg "blogapi/pkg/context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *blogsService) CreateBlog(ctx context.Context, req blogs.CreateBlogRequest) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Blog{}, blogs.ErrCreateBlog
	}

	blogID, err := s.utils.NewUUID()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate blog ID")
		return entity.Blog{}, blogs.ErrCreateBlog
	}

	now := time.Now().UTC()
	authorID := req.AuthorID

	blog := entity.Blog{
		ID:          blogID,
		Title:       req.Title,
		Description: req.Description,
		Status:      entity.BlogActive,
		AuthorID:    &authorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Status != "" {
		blog.Status = entity.BlogStatus(req.Status)
	}

	if err := repo.Blogs.CreateBlog(ctx, blog); err != nil {
		if errors.Is(err, blogs.ErrAuthorNotFound) {
			return entity.Blog{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create blog")
		return entity.Blog{}, blogs.ErrCreateBlog
	}

	created, err := s.loadBlog(ctx, repo, blogID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         blogID,
			"error":      err.Error(),
		}).Error("Failed to load created blog")
		return entity.Blog{}, blogs.ErrCreateBlog
	}

	return created, nil
}

func (s *blogsService) GetBlogByID(ctx context.Context, id string) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Blog{}, blogs.ErrFetchBlogs
	}

	blog, err := s.loadBlog(ctx, repo, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
			return entity.Blog{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to get blog")
		return entity.Blog{}, blogs.ErrFetchBlogs
	}

	return blog, nil
}

func (s *blogsService) GetBlogsForUser(ctx context.Context, userID string) ([]entity.Blog, error) {
	return s.listVisibleBlogs(ctx, userID, "", blogs.ErrFetchBlogs)
}

func (s *blogsService) GetActiveBlogsForUser(ctx context.Context, userID string) ([]entity.Blog, error) {
	return s.listVisibleBlogs(ctx, userID, entity.BlogActive, blogs.ErrFetchActiveBlog)
}

func (s *blogsService) listVisibleBlogs(ctx context.Context, userID string, status entity.BlogStatus, failure error) ([]entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	filter := blogs.BlogFilter{Status: status}
	if userID != "" {
		actor, err := s.resolveUser(ctx, userID)
		if err != nil {
			return nil, s.domainOr(requestID, err, failure, "Failed to resolve acting user")
		}
		filter = blogs.ScopeFor(actor, status)
	}

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, failure
	}

	list, err := repo.Blogs.GetBlogs(ctx, filter)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to get blogs")
		return nil, failure
	}

	list, err = s.attachLikers(ctx, repo, list)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get blog likers")
		return nil, failure
	}

	return list, nil
}

func (s *blogsService) UpdateBlog(ctx context.Context, id string, req blogs.UpdateBlogRequest) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Blog{}, blogs.ErrUpdateBlog
	}
	defer repo.Rollback()

	blog, err := repo.Blogs.LockBlog(ctx, id)
	if err != nil {
		return entity.Blog{}, s.domainOr(requestID, err, blogs.ErrUpdateBlog, "Failed to get blog")
	}

	authorChanged := applyBlogUpdate(&blog, req)
	blog.UpdatedAt = time.Now().UTC()

	if err := repo.Blogs.UpdateBlog(ctx, blog); err != nil {
		return entity.Blog{}, s.domainOr(requestID, err, blogs.ErrUpdateBlog, "Failed to update blog")
	}

	// A new author cannot keep a like on their own blog.
	if authorChanged && blog.AuthorID != nil {
		if err := repo.Likes.RemoveLike(ctx, id, *blog.AuthorID); err != nil {
			return entity.Blog{}, s.domainOr(requestID, err, blogs.ErrUpdateBlog, "Failed to drop new author's like")
		}
	}

	updated, err := s.loadBlog(ctx, repo, id)
	if err != nil {
		return entity.Blog{}, s.domainOr(requestID, err, blogs.ErrUpdateBlog, "Failed to load updated blog")
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return entity.Blog{}, blogs.ErrUpdateBlog
	}

	return updated, nil
}

func (s *blogsService) DeleteBlog(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.ErrDeleteBlog
	}

	if err := repo.Blogs.DeleteBlog(ctx, id); err != nil {
		return s.domainOr(requestID, err, blogs.ErrDeleteBlog, "Failed to delete blog")
	}

	return nil
}

// loadBlog reads a blog together with its likers.
func (s *blogsService) loadBlog(ctx context.Context, repo blogsRepository.Client, id string) (entity.Blog, error) {
	blog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		return entity.Blog{}, err
	}

	list, err := s.attachLikers(ctx, repo, []entity.Blog{blog})
	if err != nil {
		return entity.Blog{}, err
	}

	return list[0], nil
}

func (s *blogsService) attachLikers(ctx context.Context, repo blogsRepository.Client, list []entity.Blog) ([]entity.Blog, error) {
	if len(list) == 0 {
		return list, nil
	}

	ids := make([]string, 0, len(list))
	for _, blog := range list {
		ids = append(ids, blog.ID)
	}

	likers, err := repo.Likes.GetLikers(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range list {
		list[i].LikedBy = likers[list[i].ID]
		if list[i].LikedBy == nil {
			list[i].LikedBy = []entity.Liker{}
		}
	}

	return list, nil
}

// resolveUser looks up the acting or liking user through the user repository.
func (s *blogsService) resolveUser(ctx context.Context, userID string) (entity.User, error) {
	repo, err := s.usersRepo.NewClient(false)
	if err != nil {
		return entity.User{}, err
	}

	user, err := repo.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, blogs.ErrUserNotFound) {
			return entity.User{}, blogs.ErrUserNotFound
		}
		return entity.User{}, err
	}

	return user, nil
}

// domainOr passes client-facing blog errors through and logs anything else,
// replacing it with fallback.
func (s *blogsService) domainOr(requestID string, err, fallback error, msg string) error {
	for _, known := range []error{
		blogs.ErrBlogNotFound,
		blogs.ErrUserNotFound,
		blogs.ErrAuthorNotFound,
		blogs.ErrCannotLikeOwn,
	} {
		if errors.Is(err, known) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn(msg)
			return err
		}
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"error":      err.Error(),
	}).Error(msg)
	return fallback
}

// applyBlogUpdate merges the present fields and reports whether the author changed.
func applyBlogUpdate(blog *entity.Blog, req blogs.UpdateBlogRequest) bool {
	if req.Title != nil {
		blog.Title = *req.Title
	}
	if req.Description != nil {
		blog.Description = *req.Description
	}
	if req.Status != nil {
		blog.Status = entity.BlogStatus(*req.Status)
	}

	if req.AuthorID == nil || blog.IsAuthoredBy(*req.AuthorID) {
		return false
	}

	authorID := *req.AuthorID
	blog.AuthorID = &authorID
	blog.AuthorName = nil
	return true
}
