package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/inkforge/inkforge-backend/database"
	"github.com/inkforge/inkforge-backend/errs"
	"github.com/inkforge/inkforge-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type adminHandler struct {
	responder Responder
	logger    zerolog.Logger
	blogRepo  *database.BlogRepo
}

func newAdminHandler(blogRepo *database.BlogRepo) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder: NewResponder(logger),
		logger:    logger,
		blogRepo:  blogRepo,
	}
}

// listBlogs lists blogs of any status for review; omitting status lists all.
func (h adminHandler) listBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var status *models.BlogStatus
		if requested := r.URL.Query().Get("status"); requested != "" {
			s := models.BlogStatus(requested)
			if !s.Valid() {
				h.responder.WriteError(w, errs.NewInvalidFieldError("status", "unknown status"))
				return
			}
			status = &s
		}

		blogs, err := h.blogRepo.ListByStatus(status)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("list", "blogs", err))
			return
		}

		h.responder.WriteJSON(w, newBlogCards(blogs))
	}
}

// listPendingBlogs returns the review queue projection.
func (h adminHandler) listPendingBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pending := models.StatusPending
		blogs, err := h.blogRepo.ListByStatus(&pending)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("list", "pending blogs", err))
			return
		}

		h.responder.WriteJSON(w, newPendingBlogCards(blogs))
	}
}

// setBlogStatus is the admin moderation action. Rejection demands a non-blank
// reason; a blank one is refused here, never silently stored.
func (h adminHandler) setBlogStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := uuid.Parse(chi.URLParam(r, "blogID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogID"))
			return
		}

		var req setStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		status := models.BlogStatus(req.Status)
		if !status.Valid() {
			h.responder.WriteError(w, errs.NewInvalidFieldError("status", "unknown status"))
			return
		}

		var rejectionReason *string
		if status == models.StatusRejected {
			if strings.TrimSpace(req.RejectionReason) == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError("rejectionReason"))
				return
			}
			rejectionReason = &req.RejectionReason
		}

		if err := h.blogRepo.SetStatus(blogID, status, rejectionReason); err != nil {
			if err == gorm.ErrRecordNotFound {
				h.responder.WriteError(w, errs.NewNotFoundError("blog not found"))
				return
			}
			h.responder.WriteError(w, errs.NewDatabaseError("update", "blog status", err))
			return
		}

		h.responder.WriteJSON(w, map[string]bool{"success": true})
	}
}

// getAdminStats returns the moderation dashboard aggregates.
func (h adminHandler) getAdminStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := h.blogRepo.AdminStats()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("aggregate", "admin stats", err))
			return
		}

		h.responder.WriteJSON(w, stats)
	}
}
