package database

import (
	"testing"

	"github.com/google/uuid"
	"github.com/inkforge/inkforge-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeToggle(t *testing.T) {
	d := newTestDB(t)
	user := seedUser(t, d, "reader", false)
	author := seedUser(t, d, "author", false)
	blog := seedBlog(t, d, author.ID, models.StatusApproved)

	t.Run("first toggle likes and bumps the counter", func(t *testing.T) {
		liked, err := d.LikeRepo().Toggle(user.ID, blog.ID)
		require.NoError(t, err)
		assert.True(t, liked)

		found, err := d.BlogRepo().FindByID(blog.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, found.Likes)

		count, err := d.LikeRepo().CountByBlog(blog.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("second toggle unlikes and restores the counter", func(t *testing.T) {
		liked, err := d.LikeRepo().Toggle(user.ID, blog.ID)
		require.NoError(t, err)
		assert.False(t, liked)

		found, err := d.BlogRepo().FindByID(blog.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, found.Likes)

		count, err := d.LikeRepo().CountByBlog(blog.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("toggling twice is an involution", func(t *testing.T) {
		before, err := d.BlogRepo().FindByID(blog.ID)
		require.NoError(t, err)

		liked, err := d.LikeRepo().Toggle(user.ID, blog.ID)
		require.NoError(t, err)
		assert.True(t, liked)
		liked, err = d.LikeRepo().Toggle(user.ID, blog.ID)
		require.NoError(t, err)
		assert.False(t, liked)

		after, err := d.BlogRepo().FindByID(blog.ID)
		require.NoError(t, err)
		assert.Equal(t, before.Likes, after.Likes)

		count, err := d.LikeRepo().CountByBlog(blog.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(before.Likes), count)
	})

	t.Run("likes from different users accumulate", func(t *testing.T) {
		second := seedUser(t, d, "reader-2", false)
		third := seedUser(t, d, "reader-3", false)

		_, err := d.LikeRepo().Toggle(user.ID, blog.ID)
		require.NoError(t, err)
		_, err = d.LikeRepo().Toggle(second.ID, blog.ID)
		require.NoError(t, err)
		_, err = d.LikeRepo().Toggle(third.ID, blog.ID)
		require.NoError(t, err)

		found, err := d.BlogRepo().FindByID(blog.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, found.Likes)

		count, err := d.LikeRepo().CountByBlog(blog.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(found.Likes), count, "counter must track the fact table")
	})
}

func TestLikeListBlogIDsByUser(t *testing.T) {
	d := newTestDB(t)
	user := seedUser(t, d, "reader", false)
	author := seedUser(t, d, "author", false)
	first := seedBlog(t, d, author.ID, models.StatusApproved)
	second := seedBlog(t, d, author.ID, models.StatusApproved)

	_, err := d.LikeRepo().Toggle(user.ID, first.ID)
	require.NoError(t, err)
	_, err = d.LikeRepo().Toggle(user.ID, second.ID)
	require.NoError(t, err)

	ids, err := d.LikeRepo().ListBlogIDsByUser(user.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{first.ID, second.ID}, ids)

	other, err := d.LikeRepo().ListBlogIDsByUser(author.ID)
	require.NoError(t, err)
	assert.Empty(t, other)
}
