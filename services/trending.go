package services

import (
	"sort"

	"github.com/inkforge/inkforge-backend/config"
	"github.com/inkforge/inkforge-backend/models"
)

const (
	defaultTrendingViewWeight = 0.7
	defaultTrendingLikeWeight = 1.5
	defaultTrendingLimit      = 6
)

// TrendingWeights parameterize the linear trending formula.
type TrendingWeights struct {
	View float64
	Like float64
}

// NewTrendingWeights reads the ranking weights from configuration.
func NewTrendingWeights(cfg map[string]string) TrendingWeights {
	return TrendingWeights{
		View: config.GetFloat(cfg, "TRENDING_VIEW_WEIGHT", defaultTrendingViewWeight),
		Like: config.GetFloat(cfg, "TRENDING_LIKE_WEIGHT", defaultTrendingLikeWeight),
	}
}

// DefaultTrendingLimit is the page size used when the caller does not ask for one.
func DefaultTrendingLimit(cfg map[string]string) int {
	return config.GetInt(cfg, "TRENDING_DEFAULT_LIMIT", defaultTrendingLimit)
}

// Score computes the trending score for one blog's engagement counters.
func (w TrendingWeights) Score(views, likes int) float64 {
	return float64(views)*w.View + float64(likes)*w.Like
}

// RankTrending orders approved blogs by descending trending score and returns
// at most limit of them. Non-approved blogs are dropped regardless of score.
// Ties break on most-recent publish time, then ID, so the order is
// deterministic. Recomputed on every request; nothing is materialized.
func RankTrending(blogs []*models.Blog, limit int, w TrendingWeights) []*models.Blog {
	ranked := make([]*models.Blog, 0, len(blogs))
	for _, b := range blogs {
		if b.Status == models.StatusApproved {
			ranked = append(ranked, b)
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		si := w.Score(ranked[i].Views, ranked[i].Likes)
		sj := w.Score(ranked[j].Views, ranked[j].Likes)
		if si != sj {
			return si > sj
		}
		pi, pj := ranked[i].PublishedAt, ranked[j].PublishedAt
		switch {
		case pi != nil && pj != nil && !pi.Equal(*pj):
			return pi.After(*pj)
		case pi != nil && pj == nil:
			return true
		case pi == nil && pj != nil:
			return false
		}
		return ranked[i].ID.String() < ranked[j].ID.String()
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
