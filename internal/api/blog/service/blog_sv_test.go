package blogService

import (
	"blogapi/internal/api/blog"
	"blogapi/internal/api/user"
	userService "blogapi/internal/api/user/service"
	"blogapi/internal/entity"
	"blogapi/internal/storetest"
	"blogapi/pkg/utils"
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const unknownID = "00000000-0000-0000-0000-000000000000"

type fixture struct {
	blogs IBlogsService
	users userService.IUsersService
	store *storetest.Store
}

func setupBlogsService(t *testing.T) fixture {
	t.Helper()

	logger, _ := test.NewNullLogger()
	store := storetest.New()
	u := utils.New()

	return fixture{
		blogs: NewBlogsService(logger, store.BlogsRepository(), store.UsersRepository(), u),
		users: userService.NewUsersService(logger, store.UsersRepository(), u),
		store: store,
	}
}

func (f fixture) createTestUser(t *testing.T, name, role string) entity.User {
	t.Helper()

	user, err := f.users.CreateUser(context.Background(), users.CreateUserRequest{
		Email: name + "@example.com",
		Name:  name,
		Role:  role,
	})
	require.NoError(t, err)
	return user
}

func (f fixture) createTestBlog(t *testing.T, title string, author entity.User, status string) entity.Blog {
	t.Helper()

	blog, err := f.blogs.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title:       title,
		Description: title + " body",
		Status:      status,
		AuthorID:    author.ID,
	})
	require.NoError(t, err)
	return blog
}

func titles(list []entity.Blog) []string {
	res := make([]string, 0, len(list))
	for _, b := range list {
		res = append(res, b.Title)
	}
	return res
}

func likerIDs(blog entity.Blog) []string {
	res := make([]string, 0, len(blog.LikedBy))
	for _, l := range blog.LikedBy {
		res = append(res, l.ID)
	}
	return res
}

func strPtr(s string) *string {
	return &s
}

func TestCreateBlog_DefaultsAndAuthorName(t *testing.T) {
	f := setupBlogsService(t)
	ann := f.createTestUser(t, "ann", "")

	blog := f.createTestBlog(t, "Go", ann, "")

	assert.NotEmpty(t, blog.ID)
	assert.Equal(t, entity.BlogActive, blog.Status)
	require.NotNil(t, blog.AuthorID)
	assert.Equal(t, ann.ID, *blog.AuthorID)
	require.NotNil(t, blog.AuthorName)
	assert.Equal(t, "ann", *blog.AuthorName)
	assert.NotNil(t, blog.LikedBy)
	assert.Empty(t, blog.LikedBy)
}

func TestCreateBlog_UnknownAuthor(t *testing.T) {
	f := setupBlogsService(t)

	_, err := f.blogs.CreateBlog(context.Background(), blogs.CreateBlogRequest{
		Title:       "Orphan",
		Description: "no author",
		AuthorID:    unknownID,
	})

	assert.ErrorIs(t, err, blogs.ErrAuthorNotFound)
}

func TestGetBlogByID_NotFound(t *testing.T) {
	f := setupBlogsService(t)

	_, err := f.blogs.GetBlogByID(context.Background(), unknownID)

	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}

func TestGetBlogsForUser_Visibility(t *testing.T) {
	f := setupBlogsService(t)
	admin := f.createTestUser(t, "admin", "admin")
	ann := f.createTestUser(t, "ann", "")
	bob := f.createTestUser(t, "bob", "")

	f.createTestBlog(t, "Zeta", ann, "")
	f.createTestBlog(t, "Alpha", bob, "")
	f.createTestBlog(t, "Mid", ann, "inactive")

	tests := []struct {
		name   string
		userID string
		want   []string
	}{
		{name: "admin sees all, ordered by title", userID: admin.ID, want: []string{"Alpha", "Mid", "Zeta"}},
		{name: "author sees own", userID: ann.ID, want: []string{"Mid", "Zeta"}},
		{name: "other author sees own", userID: bob.ID, want: []string{"Alpha"}},
		{name: "no acting user sees all", userID: "", want: []string{"Alpha", "Mid", "Zeta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := f.blogs.GetBlogsForUser(context.Background(), tt.userID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(list))
		})
	}
}

func TestGetActiveBlogsForUser_FiltersStatus(t *testing.T) {
	f := setupBlogsService(t)
	admin := f.createTestUser(t, "admin", "admin")
	ann := f.createTestUser(t, "ann", "")

	f.createTestBlog(t, "Live", ann, "")
	f.createTestBlog(t, "Draft", ann, "inactive")

	list, err := f.blogs.GetActiveBlogsForUser(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Live"}, titles(list))

	list, err = f.blogs.GetActiveBlogsForUser(context.Background(), ann.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Live"}, titles(list))
}

func TestGetBlogsForUser_UnknownUser(t *testing.T) {
	f := setupBlogsService(t)

	_, err := f.blogs.GetBlogsForUser(context.Background(), unknownID)
	assert.ErrorIs(t, err, blogs.ErrUserNotFound)

	_, err = f.blogs.GetActiveBlogsForUser(context.Background(), unknownID)
	assert.ErrorIs(t, err, blogs.ErrUserNotFound)
}

func TestGetBlogsForUser_StoreFailureIsHidden(t *testing.T) {
	f := setupBlogsService(t)
	f.store.FailOn("GetBlogs", storetest.ErrInjected)

	_, err := f.blogs.GetBlogsForUser(context.Background(), "")

	assert.ErrorIs(t, err, blogs.ErrFetchBlogs)
}

func TestUpdateBlog_PartialFields(t *testing.T) {
	f := setupBlogsService(t)
	ann := f.createTestUser(t, "ann", "")
	blog := f.createTestBlog(t, "Go", ann, "")

	updated, err := f.blogs.UpdateBlog(context.Background(), blog.ID, blogs.UpdateBlogRequest{
		Status: strPtr("inactive"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Go", updated.Title)
	assert.Equal(t, "Go body", updated.Description)
	assert.Equal(t, entity.BlogInactive, updated.Status)
	assert.Equal(t, ann.ID, *updated.AuthorID)
}

func TestUpdateBlog_NotFound(t *testing.T) {
	f := setupBlogsService(t)

	_, err := f.blogs.UpdateBlog(context.Background(), unknownID, blogs.UpdateBlogRequest{
		Title: strPtr("x"),
	})

	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}

func TestUpdateBlog_UnknownAuthor(t *testing.T) {
	f := setupBlogsService(t)
	ann := f.createTestUser(t, "ann", "")
	blog := f.createTestBlog(t, "Go", ann, "")

	_, err := f.blogs.UpdateBlog(context.Background(), blog.ID, blogs.UpdateBlogRequest{
		AuthorID: strPtr(unknownID),
	})
	assert.ErrorIs(t, err, blogs.ErrAuthorNotFound)

	fetched, err := f.blogs.GetBlogByID(context.Background(), blog.ID)
	require.NoError(t, err)
	assert.Equal(t, ann.ID, *fetched.AuthorID)
}

func TestUpdateBlog_NewAuthorLosesOwnLike(t *testing.T) {
	f := setupBlogsService(t)
	ann := f.createTestUser(t, "ann", "")
	bob := f.createTestUser(t, "bob", "")
	carol := f.createTestUser(t, "carol", "")
	blog := f.createTestBlog(t, "Go", ann, "")

	_, err := f.blogs.LikeBlog(context.Background(), blog.ID, bob.ID)
	require.NoError(t, err)
	_, err = f.blogs.LikeBlog(context.Background(), blog.ID, carol.ID)
	require.NoError(t, err)

	updated, err := f.blogs.UpdateBlog(context.Background(), blog.ID, blogs.UpdateBlogRequest{
		AuthorID: strPtr(bob.ID),
	})
	require.NoError(t, err)

	assert.Equal(t, bob.ID, *updated.AuthorID)
	assert.Equal(t, "bob", *updated.AuthorName)
	assert.Equal(t, []string{carol.ID}, likerIDs(updated))
}

func TestDeleteBlog_CascadesLikes(t *testing.T) {
	f := setupBlogsService(t)
	ann := f.createTestUser(t, "ann", "")
	bob := f.createTestUser(t, "bob", "")
	blog := f.createTestBlog(t, "Go", ann, "")

	_, err := f.blogs.LikeBlog(context.Background(), blog.ID, bob.ID)
	require.NoError(t, err)

	require.NoError(t, f.blogs.DeleteBlog(context.Background(), blog.ID))

	_, err = f.blogs.GetBlogByID(context.Background(), blog.ID)
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
	assert.Zero(t, f.store.LikeCount())

	_, err = f.users.GetUserByID(context.Background(), bob.ID)
	assert.NoError(t, err)
}

func TestDeleteBlog_NotFound(t *testing.T) {
	f := setupBlogsService(t)

	err := f.blogs.DeleteBlog(context.Background(), unknownID)

	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}

func TestDeleteUser_KeepsAuthoredBlogsAndDropsLikes(t *testing.T) {
	f := setupBlogsService(t)
	ann := f.createTestUser(t, "ann", "")
	bob := f.createTestUser(t, "bob", "")
	annBlog := f.createTestBlog(t, "Ann's", ann, "")
	bobBlog := f.createTestBlog(t, "Bob's", bob, "")

	_, err := f.blogs.LikeBlog(context.Background(), bobBlog.ID, ann.ID)
	require.NoError(t, err)

	require.NoError(t, f.users.DeleteUser(context.Background(), ann.ID))

	orphan, err := f.blogs.GetBlogByID(context.Background(), annBlog.ID)
	require.NoError(t, err)
	assert.Nil(t, orphan.AuthorID)
	assert.Nil(t, orphan.AuthorName)

	liked, err := f.blogs.GetBlogByID(context.Background(), bobBlog.ID)
	require.NoError(t, err)
	assert.Empty(t, liked.LikedBy)
}
