package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/inkforge/inkforge-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateComment(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "writer", false)
	env.seedUser(t, "reader", false)
	blog := env.seedBlog(t, "writer", models.StatusApproved)
	token := signToken(t, "reader")
	path := fmt.Sprintf("/blogs/%s/comments", blog.ID)

	t.Run("creates a comment", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, path, token, createCommentRequest{Content: "Great read"})
		require.Equal(t, http.StatusCreated, rec.Code)

		var comment models.Comment
		decodeBody(t, rec, &comment)
		assert.Equal(t, "Great read", comment.Content)
		assert.Equal(t, "reader", comment.AuthorID)
		assert.Equal(t, blog.ID, comment.BlogID)
	})

	t.Run("blank content is refused", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, path, token, createCommentRequest{Content: "   "})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown blog is not found", func(t *testing.T) {
		rec := env.do(t, http.MethodPost,
			"/blogs/5b6e8a7e-0000-4000-8000-000000000000/comments", token,
			createCommentRequest{Content: "Hello"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("anonymous comments are rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, path, "", createCommentRequest{Content: "Hi"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestListComments(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "writer", false)
	reader := env.seedUser(t, "reader", false)
	blog := env.seedBlog(t, "writer", models.StatusApproved)
	path := fmt.Sprintf("/blogs/%s/comments", blog.ID)

	for _, content := range []string{"first", "second"} {
		rec := env.do(t, http.MethodPost, path, signToken(t, reader.ID), createCommentRequest{Content: content})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	t.Run("lists newest first with author summaries", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var views []CommentView
		decodeBody(t, rec, &views)
		require.Len(t, views, 2)
		require.NotNil(t, views[0].Author)
		assert.Equal(t, "reader", views[0].Author.ID)
	})

	t.Run("unknown blog is not found", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/blogs/5b6e8a7e-0000-4000-8000-000000000000/comments", "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
