package blogRepository

import (
	"blogapi/internal/api/blog"
	"blogapi/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor sqlx.ExtContext
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		var err error
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Blogs:    &blogsRepository{q: sqlExecutor, log: r.log},
		Likes:    &likesRepository{q: sqlExecutor, log: r.log},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

type Client struct {
	Blogs interface {
		CreateBlog(ctx context.Context, blog entity.Blog) error
		GetBlogByID(ctx context.Context, id string) (entity.Blog, error)
		// LockBlog reads the blog and holds its row lock until the transaction ends.
		LockBlog(ctx context.Context, id string) (entity.Blog, error)
		GetBlogs(ctx context.Context, filter blogs.BlogFilter) ([]entity.Blog, error)
		UpdateBlog(ctx context.Context, blog entity.Blog) error
		DeleteBlog(ctx context.Context, id string) error
	}

	Likes interface {
		AddLike(ctx context.Context, blogID, userID string) error
		RemoveLike(ctx context.Context, blogID, userID string) error
		GetLikers(ctx context.Context, blogIDs []string) (map[string][]entity.Liker, error)
	}

	Commit   func() error
	Rollback func() error
}

type blogsRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}

type likesRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}
