package userRepository

import (
	contextPkg "blogapi/pkg/context"
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// DeleteLikesByUser detaches every like the user gave and reports how many were removed.
func (r *likeRepository) DeleteLikesByUser(c context.Context, userID string) (int64, error) {
	requestID := contextPkg.GetRequestID(c)

	query, args, err := sqlx.Named(queryDeleteLikesByUser, map[string]interface{}{
		"user_id": userID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteLikesByUser named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("DeleteLikesByUser execution err")
		return 0, err
	}

	return result.RowsAffected()
}
