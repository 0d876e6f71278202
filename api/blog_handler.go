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
	"github.com/inkforge/inkforge-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type blogHandler struct {
	responder     Responder
	logger        zerolog.Logger
	blogRepo      *database.BlogRepo
	userRepo      *database.UserRepo
	likeRepo      *database.LikeRepo
	analyzer      services.ContentAnalyzer
	policy        services.Policy
	weights       services.TrendingWeights
	trendingLimit int
}

func newBlogHandler(
	blogRepo *database.BlogRepo,
	userRepo *database.UserRepo,
	likeRepo *database.LikeRepo,
	analyzer services.ContentAnalyzer,
	policy services.Policy,
	weights services.TrendingWeights,
	trendingLimit int,
) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		blogRepo:      blogRepo,
		userRepo:      userRepo,
		likeRepo:      likeRepo,
		analyzer:      analyzer,
		policy:        policy,
		weights:       weights,
		trendingLimit: trendingLimit,
	}
}

// callerIsAdmin reports whether the request carries an authenticated admin.
// Anonymous callers are simply not admins; no error surfaces here.
func (h blogHandler) callerIsAdmin(r *http.Request) bool {
	userID, err := ctxGetUserID(r.Context())
	if err != nil {
		return false
	}
	user, err := h.userRepo.FindByID(userID)
	if err != nil || user == nil {
		return false
	}
	return user.IsAdmin
}

// listBlogs serves the public feed: trending, search, or a status-filtered
// list. Non-admin callers always get approved blogs no matter what status
// they ask for; only admins may list other statuses here.
func (h blogHandler) listBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		if query.Get("trending") == "true" {
			approved := models.StatusApproved
			blogs, err := h.blogRepo.ListByStatus(&approved)
			if err != nil {
				h.responder.WriteError(w, errs.NewDatabaseError("list", "blogs", err))
				return
			}
			ranked := services.RankTrending(blogs, h.trendingLimit, h.weights)
			h.responder.WriteJSON(w, newBlogCards(ranked))
			return
		}

		if search := query.Get("search"); query.Has("search") {
			blogs, err := h.blogRepo.Search(search)
			if err != nil {
				h.responder.WriteError(w, errs.NewDatabaseError("search", "blogs", err))
				return
			}
			h.responder.WriteJSON(w, newBlogCards(blogs))
			return
		}

		status := models.StatusApproved
		if requested := query.Get("status"); requested != "" && h.callerIsAdmin(r) {
			if !models.BlogStatus(requested).Valid() {
				h.responder.WriteError(w, errs.NewInvalidFieldError("status", "unknown status"))
				return
			}
			status = models.BlogStatus(requested)
		}

		blogs, err := h.blogRepo.ListByStatus(&status)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("list", "blogs", err))
			return
		}
		h.responder.WriteJSON(w, newBlogCards(blogs))
	}
}

// getBlog returns the detail view and bumps the view counter. Non-approved
// blogs are visible only to their author and to admins; everyone else gets a
// 404 rather than a hint that the blog exists.
func (h blogHandler) getBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := uuid.Parse(chi.URLParam(r, "blogID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogID"))
			return
		}

		blog, err := h.blogRepo.FindWithAuthor(blogID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "blog", err))
			return
		}
		if blog == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog not found"))
			return
		}

		if blog.Status != models.StatusApproved {
			callerID, _ := ctxGetUserID(r.Context())
			if callerID != blog.AuthorID && !h.callerIsAdmin(r) {
				h.responder.WriteError(w, errs.NewNotFoundError("blog not found"))
				return
			}
		}

		if err := h.blogRepo.IncrementViews(blogID); err != nil {
			// A missed view bump is not worth failing the read.
			h.logger.Error().Err(err).Str("blogID", blogID.String()).Msg("failed to increment views")
		} else {
			blog.Views++
		}

		h.responder.WriteJSON(w, newBlogDetail(blog))
	}
}

// createBlog is the submission pipeline: validate, generate a missing
// excerpt, classify, persist the verdict, then apply the auto-approval
// policy. Classification is persisted before the policy decision and before
// the response is written; nothing is fire-and-forget.
func (h blogHandler) createBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var req createBlogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if strings.TrimSpace(req.Title) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if strings.TrimSpace(req.Content) == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("content"))
			return
		}
		if !models.ValidCategory(req.Category) {
			h.responder.WriteError(w, errs.NewInvalidFieldError("category", "unknown category"))
			return
		}

		submitted := models.BlogStatus(req.Status)
		if req.Status == "" {
			submitted = models.StatusPending
		}
		if submitted != models.StatusDraft && submitted != models.StatusPending {
			h.responder.WriteError(w, errs.NewInvalidFieldError("status", "must be draft or pending"))
			return
		}

		// The classifier round-trip and the excerpt round-trip are
		// independent, so they run concurrently. Neither can fail the
		// submission: both degrade internally.
		var verdict services.Verdict
		excerpt := req.Excerpt
		g, gctx := errgroup.WithContext(r.Context())
		g.Go(func() error {
			verdict = h.analyzer.Classify(gctx, req.Content)
			return nil
		})
		if excerpt == nil || strings.TrimSpace(*excerpt) == "" {
			g.Go(func() error {
				generated := h.analyzer.Summarize(gctx, req.Content)
				excerpt = &generated
				return nil
			})
		}
		_ = g.Wait()

		blog := &models.Blog{
			Title:    req.Title,
			Content:  req.Content,
			Excerpt:  excerpt,
			Category: req.Category,
			AuthorID: userID,
			Status:   submitted,
		}
		if err := h.blogRepo.Add(blog); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "blog", err))
			return
		}

		if err := h.blogRepo.SetAIAnalysis(blog.ID, verdict.Sentiment, verdict.Score, verdict.Analysis); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "blog analysis", err))
			return
		}

		if decided := h.policy.Decide(submitted, verdict); decided != submitted {
			if err := h.blogRepo.SetStatus(blog.ID, decided, nil); err != nil {
				h.responder.WriteError(w, errs.NewDatabaseError("update", "blog status", err))
				return
			}
		}

		created, err := h.blogRepo.FindByID(blog.ID)
		if err != nil || created == nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "created blog", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// toggleLike flips the caller's like on a blog and reports the new state.
func (h blogHandler) toggleLike() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		blogID, err := uuid.Parse(chi.URLParam(r, "blogID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogID"))
			return
		}

		blog, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "blog", err))
			return
		}
		if blog == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog not found"))
			return
		}

		liked, err := h.likeRepo.Toggle(userID, blogID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("toggle", "like", err))
			return
		}

		h.responder.WriteJSON(w, map[string]bool{"liked": liked})
	}
}

// suggestImprovements returns advisory writing suggestions for the author's
// own blog. Not on the moderation path; an unreachable model yields an empty
// list, not an error.
func (h blogHandler) suggestImprovements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := ctxGetUserID(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		blogID, err := uuid.Parse(chi.URLParam(r, "blogID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogID"))
			return
		}

		blog, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "blog", err))
			return
		}
		if blog == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog not found"))
			return
		}
		if blog.AuthorID != userID {
			h.responder.WriteError(w, errs.NewForbiddenError("only the author can request suggestions"))
			return
		}

		suggestions := h.analyzer.SuggestImprovements(r.Context(), blog.Content)
		h.responder.WriteJSON(w, map[string][]string{"suggestions": suggestions})
	}
}
