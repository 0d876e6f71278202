package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/inkforge/inkforge-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trendingBlog(title string, status models.BlogStatus, views, likes int, publishedAt *time.Time) *models.Blog {
	return &models.Blog{
		ID:          uuid.New(),
		Title:       title,
		Status:      status,
		Views:       views,
		Likes:       likes,
		PublishedAt: publishedAt,
	}
}

func TestTrendingScore(t *testing.T) {
	weights := TrendingWeights{View: 0.7, Like: 1.5}

	// views=100, likes=10 -> 85; views=50, likes=40 -> 95
	assert.InDelta(t, 85.0, weights.Score(100, 10), 1e-9)
	assert.InDelta(t, 95.0, weights.Score(50, 40), 1e-9)
}

func TestRankTrending(t *testing.T) {
	weights := TrendingWeights{View: 0.7, Like: 1.5}
	now := time.Now()

	t.Run("orders by descending score", func(t *testing.T) {
		a := trendingBlog("A", models.StatusApproved, 100, 10, &now)
		b := trendingBlog("B", models.StatusApproved, 50, 40, &now)

		ranked := RankTrending([]*models.Blog{a, b}, 6, weights)
		require.Len(t, ranked, 2)
		assert.Equal(t, "B", ranked[0].Title)
		assert.Equal(t, "A", ranked[1].Title)
	})

	t.Run("excludes non-approved blogs regardless of score", func(t *testing.T) {
		approved := trendingBlog("approved", models.StatusApproved, 10, 0, &now)
		pending := trendingBlog("pending", models.StatusPending, 100000, 100000, &now)
		rejected := trendingBlog("rejected", models.StatusRejected, 100000, 100000, &now)
		draft := trendingBlog("draft", models.StatusDraft, 100000, 100000, &now)

		ranked := RankTrending([]*models.Blog{approved, pending, rejected, draft}, 6, weights)
		require.Len(t, ranked, 1)
		assert.Equal(t, "approved", ranked[0].Title)
	})

	t.Run("never returns more than the limit", func(t *testing.T) {
		var blogs []*models.Blog
		for i := 0; i < 10; i++ {
			blogs = append(blogs, trendingBlog("b", models.StatusApproved, i, 0, &now))
		}

		ranked := RankTrending(blogs, 6, weights)
		assert.Len(t, ranked, 6)
	})

	t.Run("ties break on most recent publish time", func(t *testing.T) {
		older := now.Add(-time.Hour)
		first := trendingBlog("older", models.StatusApproved, 10, 10, &older)
		second := trendingBlog("newer", models.StatusApproved, 10, 10, &now)

		ranked := RankTrending([]*models.Blog{first, second}, 6, weights)
		require.Len(t, ranked, 2)
		assert.Equal(t, "newer", ranked[0].Title)
		assert.Equal(t, "older", ranked[1].Title)
	})

	t.Run("ordering is stable across calls", func(t *testing.T) {
		a := trendingBlog("a", models.StatusApproved, 10, 10, &now)
		b := trendingBlog("b", models.StatusApproved, 10, 10, &now)

		first := RankTrending([]*models.Blog{a, b}, 6, weights)
		second := RankTrending([]*models.Blog{b, a}, 6, weights)
		require.Len(t, first, 2)
		assert.Equal(t, first[0].ID, second[0].ID)
		assert.Equal(t, first[1].ID, second[1].ID)
	})
}

func TestNewTrendingWeights(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		weights := NewTrendingWeights(map[string]string{})
		assert.InDelta(t, 0.7, weights.View, 1e-9)
		assert.InDelta(t, 1.5, weights.Like, 1e-9)
	})

	t.Run("overridable from config", func(t *testing.T) {
		weights := NewTrendingWeights(map[string]string{
			"TRENDING_VIEW_WEIGHT": "1.0",
			"TRENDING_LIKE_WEIGHT": "2.0",
		})
		assert.InDelta(t, 1.0, weights.View, 1e-9)
		assert.InDelta(t, 2.0, weights.Like, 1e-9)
	})
}
