package api

import (
	"github.com/inkforge/inkforge-backend/database"
	"github.com/inkforge/inkforge-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, analyzer services.ContentAnalyzer, cfg map[string]string) *routeHandlers {
	policy := services.NewPolicy(cfg)
	weights := services.NewTrendingWeights(cfg)
	trendingLimit := services.DefaultTrendingLimit(cfg)

	return &routeHandlers{
		blogHandler: newBlogHandler(
			database.BlogRepo(),
			database.UserRepo(),
			database.LikeRepo(),
			analyzer,
			policy,
			weights,
			trendingLimit,
		),
		commentHandler: newCommentHandler(database.CommentRepo(), database.BlogRepo()),
		userHandler:    newUserHandler(database.UserRepo(), database.BlogRepo(), database.LikeRepo()),
		adminHandler:   newAdminHandler(database.BlogRepo()),
	}
}
