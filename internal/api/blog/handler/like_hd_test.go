package blogHandler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeAndUnlikeBlog(t *testing.T) {
	a := setupApp(t)
	ann := a.createUser(t, "ann", "")
	bob := a.createUser(t, "bob", "")
	blog := a.createBlog(t, "Go", ann)

	resp, raw := a.do(t, http.MethodPost, "/blogs/"+blog.ID+"/like?userId="+bob.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	liked := decodeBlog(t, raw)
	assert.Equal(t, 1, liked.LikesCount)
	require.Len(t, liked.LikedBy, 1)
	assert.Equal(t, bob.ID, liked.LikedBy[0].ID)
	assert.Equal(t, "bob", liked.LikedBy[0].Name)

	resp, raw = a.do(t, http.MethodPost, "/blogs/"+blog.ID+"/like?userId="+bob.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, decodeBlog(t, raw).LikesCount)

	resp, raw = a.do(t, http.MethodDelete, "/blogs/"+blog.ID+"/like?userId="+bob.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, decodeBlog(t, raw).LikesCount)
}

func TestLikeBlog_OwnBlog(t *testing.T) {
	a := setupApp(t)
	ann := a.createUser(t, "ann", "")
	blog := a.createBlog(t, "Go", ann)

	resp, raw := a.do(t, http.MethodPost, "/blogs/"+blog.ID+"/like?userId="+ann.ID, nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error":"you can't like your own blog"}`, string(raw))
}

func TestLikeBlog_NotFound(t *testing.T) {
	a := setupApp(t)
	ann := a.createUser(t, "ann", "")
	blog := a.createBlog(t, "Go", ann)

	resp, raw := a.do(t, http.MethodPost, "/blogs/"+unknownID+"/like?userId="+ann.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"blog not found"}`, string(raw))

	resp, raw = a.do(t, http.MethodPost, "/blogs/"+blog.ID+"/like?userId="+unknownID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"user not found"}`, string(raw))
}

func TestLikeBlog_MissingUserID(t *testing.T) {
	a := setupApp(t)
	ann := a.createUser(t, "ann", "")
	blog := a.createBlog(t, "Go", ann)

	resp, _ := a.do(t, http.MethodPost, "/blogs/"+blog.ID+"/like", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = a.do(t, http.MethodDelete, "/blogs/"+blog.ID+"/like?userId=bad", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
