package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/inkforge/inkforge-backend/database"
	"github.com/inkforge/inkforge-backend/errs"
	"github.com/inkforge/inkforge-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type userHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
	blogRepo  *database.BlogRepo
	likeRepo  *database.LikeRepo
}

func newUserHandler(userRepo *database.UserRepo, blogRepo *database.BlogRepo, likeRepo *database.LikeRepo) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		blogRepo:  blogRepo,
		likeRepo:  likeRepo,
	}
}

// login is the identity-provider callback: it upserts the user record keyed
// by the token subject. The admin flag is never writable from here.
func (h userHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		user := &models.User{
			ID:              userID,
			Email:           req.Email,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			ProfileImageURL: req.ProfileImageURL,
		}
		if err := h.userRepo.Upsert(user); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("upsert", "user", err))
			return
		}

		// Reload so the response carries the stored admin flag and timestamps.
		stored, err := h.userRepo.FindByID(userID)
		if err != nil || stored == nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "user", err))
			return
		}

		h.responder.WriteJSON(w, stored)
	}
}

// getCurrentUser returns the caller's own user record.
func (h userHandler) getCurrentUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		user, err := h.userRepo.FindByID(userID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("user not found"))
			return
		}

		h.responder.WriteJSON(w, user)
	}
}

// getUserBlogs lists the caller's own blogs, every status, newest-first.
func (h userHandler) getUserBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		blogs, err := h.blogRepo.ListByAuthor(userID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("list", "user blogs", err))
			return
		}

		h.responder.WriteJSON(w, blogs)
	}
}

// getUserLikes returns the ids of every blog the caller currently likes, so a
// client can render like state across a whole feed with one call.
func (h userHandler) getUserLikes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		ids, err := h.likeRepo.ListBlogIDsByUser(userID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("list", "user likes", err))
			return
		}

		h.responder.WriteJSON(w, map[string][]uuid.UUID{"likedBlogIds": ids})
	}
}

// getUserStats returns the author dashboard aggregates.
func (h userHandler) getUserStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		stats, err := h.blogRepo.UserStats(userID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("aggregate", "user stats", err))
			return
		}

		h.responder.WriteJSON(w, stats)
	}
}
