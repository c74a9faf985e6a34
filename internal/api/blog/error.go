package blogs

import "blogapi/pkg/response"

var (
	ErrBlogNotFound    = response.NotFound("blog not found")
	ErrUserNotFound    = response.NotFound("user not found")
	ErrAuthorNotFound  = response.NotFound("author not found")
	ErrCannotLikeOwn   = response.InvalidOperation("you can't like your own blog")
	ErrCreateBlog      = response.Internal("failed to create blog")
	ErrFetchBlogs      = response.Internal("failed to fetch blogs")
	ErrFetchActiveBlog = response.Internal("failed to fetch active blogs")
	ErrUpdateBlog      = response.Internal("failed to update blog")
	ErrDeleteBlog      = response.Internal("failed to remove blog")
	ErrLikeBlog        = response.Internal("failed to like blog")
	ErrUnlikeBlog      = response.Internal("failed to unlike blog")
)
