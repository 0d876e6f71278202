package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/inkforge/inkforge-backend/database"
	"github.com/inkforge/inkforge-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminListBlogs(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "writer", false)
	env.seedUser(t, "moderator", true)
	env.seedBlog(t, "writer", models.StatusApproved)
	env.seedBlog(t, "writer", models.StatusPending)
	env.seedBlog(t, "writer", models.StatusDraft)
	token := signToken(t, "moderator")

	t.Run("no filter lists every status", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/admin/blogs", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var cards []BlogCard
		decodeBody(t, rec, &cards)
		assert.Len(t, cards, 3)
	})

	t.Run("status filter narrows the list", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/admin/blogs?status=draft", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var cards []BlogCard
		decodeBody(t, rec, &cards)
		require.Len(t, cards, 1)
		assert.Equal(t, models.StatusDraft, cards[0].Status)
	})

	t.Run("unknown status filter is a bad request", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/admin/blogs?status=published", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminPendingQueue(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "writer", false)
	env.seedUser(t, "moderator", true)
	env.seedBlog(t, "writer", models.StatusApproved)
	pending := env.seedBlog(t, "writer", models.StatusPending)

	rec := env.do(t, http.MethodGet, "/admin/blogs/pending", signToken(t, "moderator"), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cards []PendingBlogCard
	decodeBody(t, rec, &cards)
	require.Len(t, cards, 1)
	assert.Equal(t, pending.ID, cards[0].ID)

	// The queue projection carries no body and no engagement counters.
	var raw []map[string]any
	decodeBody(t, rec, &raw)
	assert.NotContains(t, raw[0], "content")
	assert.NotContains(t, raw[0], "views")
	assert.NotContains(t, raw[0], "likes")
}

func TestAdminSetBlogStatus(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "writer", false)
	env.seedUser(t, "moderator", true)
	token := signToken(t, "moderator")

	statusPath := func(id fmt.Stringer) string {
		return fmt.Sprintf("/admin/blogs/%s/status", id)
	}

	t.Run("approving publishes the blog", func(t *testing.T) {
		blog := env.seedBlog(t, "writer", models.StatusPending)

		rec := env.do(t, http.MethodPatch, statusPath(blog.ID), token, setStatusRequest{Status: "approved"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())

		stored, err := env.db.BlogRepo().FindByID(blog.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusApproved, stored.Status)
		assert.NotNil(t, stored.PublishedAt)
	})

	t.Run("rejecting without a reason is refused", func(t *testing.T) {
		blog := env.seedBlog(t, "writer", models.StatusPending)

		rec := env.do(t, http.MethodPatch, statusPath(blog.ID), token, setStatusRequest{Status: "rejected"})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var errResp ErrorResponse
		decodeBody(t, rec, &errResp)
		assert.Equal(t, "error", errResp.Status)
		assert.Equal(t, "rejectionReason", errResp.Field)

		rec = env.do(t, http.MethodPatch, statusPath(blog.ID), token, setStatusRequest{
			Status:          "rejected",
			RejectionReason: "   ",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejecting with a reason stores it", func(t *testing.T) {
		blog := env.seedBlog(t, "writer", models.StatusPending)

		rec := env.do(t, http.MethodPatch, statusPath(blog.ID), token, setStatusRequest{
			Status:          "rejected",
			RejectionReason: "duplicate submission",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		stored, err := env.db.BlogRepo().FindByID(blog.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusRejected, stored.Status)
		require.NotNil(t, stored.RejectionReason)
		assert.Equal(t, "duplicate submission", *stored.RejectionReason)
	})

	t.Run("unknown status is a bad request", func(t *testing.T) {
		blog := env.seedBlog(t, "writer", models.StatusPending)

		rec := env.do(t, http.MethodPatch, statusPath(blog.ID), token, setStatusRequest{Status: "published"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown blog is not found", func(t *testing.T) {
		rec := env.do(t, http.MethodPatch,
			"/admin/blogs/5b6e8a7e-0000-4000-8000-000000000000/status", token,
			setStatusRequest{Status: "approved"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAdminStats(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "writer", false)
	env.seedUser(t, "moderator", true)
	env.seedBlog(t, "writer", models.StatusApproved)
	env.seedBlog(t, "writer", models.StatusPending)
	env.seedBlog(t, "writer", models.StatusPending)

	rec := env.do(t, http.MethodGet, "/admin/stats", signToken(t, "moderator"), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats database.AdminStats
	decodeBody(t, rec, &stats)
	assert.Equal(t, int64(3), stats.TotalBlogs)
	assert.Equal(t, int64(2), stats.PendingReview)
}
