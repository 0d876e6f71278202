package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public, authenticated, and admin route groups.
func setupRoutes(r chi.Router, handlers *routeHandlers, auth authMiddleware) {
	// Public routes: readable anonymously, richer for authors/admins.
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(auth.optionalAuthenticate)

		r.Get("/blogs", handlers.blogHandler.listBlogs())
		r.Get("/blogs/{blogID}", handlers.blogHandler.getBlog())
		r.Get("/blogs/{blogID}/comments", handlers.commentHandler.listComments())
	})

	// Authenticated routes.
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(auth.authenticate)

		r.Post("/auth/login", handlers.userHandler.login())
		r.Get("/auth/user", handlers.userHandler.getCurrentUser())

		r.Post("/blogs", handlers.blogHandler.createBlog())
		r.Post("/blogs/{blogID}/like", handlers.blogHandler.toggleLike())
		r.Post("/blogs/{blogID}/comments", handlers.commentHandler.createComment())
		r.Post("/blogs/{blogID}/suggestions", handlers.blogHandler.suggestImprovements())

		r.Get("/user/blogs", handlers.userHandler.getUserBlogs())
		r.Get("/user/likes", handlers.userHandler.getUserLikes())
		r.Get("/user/stats", handlers.userHandler.getUserStats())
	})

	// Admin routes: authenticated and isAdmin-gated.
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(auth.authenticate)
		r.Use(auth.requireAdmin)

		r.Get("/admin/blogs", handlers.adminHandler.listBlogs())
		r.Get("/admin/blogs/pending", handlers.adminHandler.listPendingBlogs())
		r.Patch("/admin/blogs/{blogID}/status", handlers.adminHandler.setBlogStatus())
		r.Get("/admin/stats", handlers.adminHandler.getAdminStats())
	})
}
