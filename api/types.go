package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/inkforge/inkforge-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	blogHandler    blogHandler
	commentHandler commentHandler
	userHandler    userHandler
	adminHandler   adminHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

// AuthorSummary is the denormalized author projection embedded in read views.
type AuthorSummary struct {
	ID              string  `json:"id"`
	FirstName       *string `json:"firstName,omitempty"`
	LastName        *string `json:"lastName,omitempty"`
	ProfileImageURL *string `json:"profileImageUrl,omitempty"`
}

func newAuthorSummary(u *models.User) *AuthorSummary {
	if u == nil {
		return nil
	}
	return &AuthorSummary{
		ID:              u.ID,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfileImageURL: u.ProfileImageURL,
	}
}

// BlogCard is the list/feed projection: no content body.
type BlogCard struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Excerpt     *string           `json:"excerpt,omitempty"`
	Category    string            `json:"category"`
	Status      models.BlogStatus `json:"status"`
	Views       int               `json:"views"`
	Likes       int               `json:"likes"`
	AISentiment *string           `json:"aiSentiment,omitempty"`
	AIScore     *int              `json:"aiScore,omitempty"`
	PublishedAt *time.Time        `json:"publishedAt,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	Author      *AuthorSummary    `json:"author,omitempty"`
}

func newBlogCard(b *models.Blog) BlogCard {
	return BlogCard{
		ID:          b.ID,
		Title:       b.Title,
		Excerpt:     b.Excerpt,
		Category:    b.Category,
		Status:      b.Status,
		Views:       b.Views,
		Likes:       b.Likes,
		AISentiment: b.AISentiment,
		AIScore:     b.AIScore,
		PublishedAt: b.PublishedAt,
		CreatedAt:   b.CreatedAt,
		Author:      newAuthorSummary(b.Author),
	}
}

func newBlogCards(blogs []*models.Blog) []BlogCard {
	cards := make([]BlogCard, 0, len(blogs))
	for _, b := range blogs {
		cards = append(cards, newBlogCard(b))
	}
	return cards
}

// BlogDetail is the full detail view: the blog plus its author summary.
type BlogDetail struct {
	models.Blog
	Author *AuthorSummary `json:"author,omitempty"`
}

func newBlogDetail(b *models.Blog) BlogDetail {
	detail := BlogDetail{Blog: *b, Author: newAuthorSummary(b.Author)}
	detail.Blog.Author = nil
	return detail
}

// PendingBlogCard is the admin review-queue projection: verdict fields but no
// engagement counters and no content body.
type PendingBlogCard struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Excerpt     *string        `json:"excerpt,omitempty"`
	Category    string         `json:"category"`
	AISentiment *string        `json:"aiSentiment,omitempty"`
	AIScore     *int           `json:"aiScore,omitempty"`
	AIAnalysis  *string        `json:"aiAnalysis,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	Author      *AuthorSummary `json:"author,omitempty"`
}

func newPendingBlogCards(blogs []*models.Blog) []PendingBlogCard {
	cards := make([]PendingBlogCard, 0, len(blogs))
	for _, b := range blogs {
		cards = append(cards, PendingBlogCard{
			ID:          b.ID,
			Title:       b.Title,
			Excerpt:     b.Excerpt,
			Category:    b.Category,
			AISentiment: b.AISentiment,
			AIScore:     b.AIScore,
			AIAnalysis:  b.AIAnalysis,
			CreatedAt:   b.CreatedAt,
			Author:      newAuthorSummary(b.Author),
		})
	}
	return cards
}

// CommentView is a comment with its author summary.
type CommentView struct {
	ID        uuid.UUID      `json:"id"`
	Content   string         `json:"content"`
	CreatedAt time.Time      `json:"createdAt"`
	Author    *AuthorSummary `json:"author,omitempty"`
}

func newCommentViews(comments []*models.Comment) []CommentView {
	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, CommentView{
			ID:        c.ID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			Author:    newAuthorSummary(c.Author),
		})
	}
	return views
}

type createBlogRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Category string  `json:"category"`
	Excerpt  *string `json:"excerpt,omitempty"`
	Status   string  `json:"status"`
}

type createCommentRequest struct {
	Content string `json:"content"`
}

type loginRequest struct {
	Email           *string `json:"email,omitempty"`
	FirstName       *string `json:"firstName,omitempty"`
	LastName        *string `json:"lastName,omitempty"`
	ProfileImageURL *string `json:"profileImageUrl,omitempty"`
}

type setStatusRequest struct {
	Status          string `json:"status"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}
