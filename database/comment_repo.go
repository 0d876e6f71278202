package database

import (
	"github.com/google/uuid"
	"github.com/inkforge/inkforge-backend/models"
	"gorm.io/gorm"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// Add inserts a new comment. Comments are append-only.
func (r *CommentRepo) Add(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// ListByBlog returns a blog's comments newest-first with author records loaded.
func (r *CommentRepo) ListByBlog(blogID uuid.UUID) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.Preload("Author").
		Where("blog_id = ?", blogID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}
