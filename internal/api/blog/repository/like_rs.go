package blogRepository

import (
	"blogapi/internal/api/blog"
	"blogapi/internal/entity"
	contextPkg "blogapi/pkg/context"
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type LikerDB struct {
	BlogID string `db:"blog_id"`
	ID     string `db:"id"`
	Name   string `db:"name"`
}

// AddLike records the like. Liking twice leaves a single row.
func (r *likesRepository) AddLike(ctx context.Context, blogID, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryAddLike, map[string]interface{}{
		"blog_id": blogID,
		"user_id": userID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("AddLike named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		switch {
		case isForeignKeyViolation(err, "blog_likes_blog_id_fkey"):
			return blogs.ErrBlogNotFound
		case isForeignKeyViolation(err, "blog_likes_user_id_fkey"):
			return blogs.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("AddLike execution err")
		return err
	}

	return nil
}

// RemoveLike deletes the like if present; a missing like is not an error.
func (r *likesRepository) RemoveLike(ctx context.Context, blogID, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryRemoveLike, map[string]interface{}{
		"blog_id": blogID,
		"user_id": userID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("RemoveLike named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    blogID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("RemoveLike execution err")
		return err
	}

	return nil
}

// GetLikers returns the likers of each blog keyed by blog id, ordered by name.
func (r *likesRepository) GetLikers(ctx context.Context, blogIDs []string) (map[string][]entity.Liker, error) {
	requestID := contextPkg.GetRequestID(ctx)
	likers := make(map[string][]entity.Liker, len(blogIDs))

	if len(blogIDs) == 0 {
		return likers, nil
	}

	query, args, err := sqlx.Named(queryGetLikers, map[string]interface{}{
		"blog_ids": pq.Array(blogIDs),
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetLikers named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	var rows []LikerDB
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetLikers execution err")
		return nil, err
	}

	for _, row := range rows {
		likers[row.BlogID] = append(likers[row.BlogID], entity.Liker{ID: row.ID, Name: row.Name})
	}

	return likers, nil
}
