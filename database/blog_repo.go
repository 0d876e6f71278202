package database

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inkforge/inkforge-backend/models"
	"gorm.io/gorm"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// UserStats aggregates an author's approved output and its engagement.
type UserStats struct {
	Published  int64 `json:"published"`
	Pending    int64 `json:"pending"`
	TotalViews int64 `json:"totalViews"`
	TotalLikes int64 `json:"totalLikes"`
}

// AdminStats summarizes the moderation queue for the admin dashboard.
type AdminStats struct {
	TotalBlogs    int64   `json:"totalBlogs"`
	PendingReview int64   `json:"pendingReview"`
	AvgAIScore    float64 `json:"avgAiScore"`
}

// Add inserts a new blog. The ID and timestamps are assigned on the way in;
// the status is stored exactly as submitted, moderation policy has already
// decided it by the time this is called.
func (r *BlogRepo) Add(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

// FindByID returns a blog by its ID, or nil when it does not exist.
func (r *BlogRepo) FindByID(id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Where("id = ?", id).First(&blog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blog, nil
}

// FindWithAuthor returns a blog with its author record loaded, for detail views.
func (r *BlogRepo) FindWithAuthor(id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Preload("Author").Where("id = ?", id).First(&blog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &blog, nil
}

// ListByStatus returns blogs newest-first by creation time. A nil status
// returns every status and is reserved for privileged callers; the public
// feed always passes models.StatusApproved.
func (r *BlogRepo) ListByStatus(status *models.BlogStatus) ([]*models.Blog, error) {
	var blogs []*models.Blog
	q := r.db.Preload("Author").Order("created_at DESC")
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	err := q.Find(&blogs).Error
	return blogs, err
}

// ListByAuthor returns all of one author's blogs, every status, newest-first.
func (r *BlogRepo) ListByAuthor(authorID string) ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.db.Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&blogs).Error
	return blogs, err
}

// Search does a case-insensitive substring match over title, content, and
// category, restricted to approved blogs, newest-first by publish time.
// An empty query returns an empty result rather than the full corpus.
func (r *BlogRepo) Search(query string) ([]*models.Blog, error) {
	if strings.TrimSpace(query) == "" {
		return []*models.Blog{}, nil
	}

	pattern := "%" + strings.ToLower(query) + "%"
	var blogs []*models.Blog
	err := r.db.Preload("Author").
		Where("status = ?", models.StatusApproved).
		Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(category) LIKE ?",
			pattern, pattern, pattern).
		Order("published_at DESC").
		Find(&blogs).Error
	return blogs, err
}

// IncrementViews bumps the view counter with a single-statement atomic add so
// concurrent readers never lose updates.
func (r *BlogRepo) IncrementViews(id uuid.UUID) error {
	return r.db.Model(&models.Blog{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

// SetAIAnalysis overwrites the classifier verdict fields. Status is not
// touched here; status changes are a separate, explicit call.
func (r *BlogRepo) SetAIAnalysis(id uuid.UUID, sentiment string, score int, analysis string) error {
	return r.db.Model(&models.Blog{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"ai_sentiment": sentiment,
			"ai_score":     score,
			"ai_analysis":  analysis,
			"updated_at":   time.Now(),
		}).Error
}

// SetStatus moves a blog to a new moderation state. On approval the publish
// time is set only if it is currently null, so a reject/re-approve cycle keeps
// the original publish date. Returns gorm.ErrRecordNotFound for unknown ids.
func (r *BlogRepo) SetStatus(id uuid.UUID, status models.BlogStatus, rejectionReason *string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"status":     status,
			"updated_at": time.Now(),
		}
		if rejectionReason != nil {
			updates["rejection_reason"] = *rejectionReason
		}

		res := tx.Model(&models.Blog{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if status == models.StatusApproved {
			return tx.Model(&models.Blog{}).
				Where("id = ? AND published_at IS NULL", id).
				UpdateColumn("published_at", time.Now()).Error
		}
		return nil
	})
}

// UserStats computes the author dashboard aggregates over approved blogs.
func (r *BlogRepo) UserStats(authorID string) (*UserStats, error) {
	var stats UserStats

	err := r.db.Model(&models.Blog{}).
		Where("author_id = ? AND status = ?", authorID, models.StatusApproved).
		Count(&stats.Published).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&models.Blog{}).
		Where("author_id = ? AND status = ?", authorID, models.StatusPending).
		Count(&stats.Pending).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&models.Blog{}).
		Where("author_id = ? AND status = ?", authorID, models.StatusApproved).
		Select("COALESCE(SUM(views), 0)").
		Scan(&stats.TotalViews).Error
	if err != nil {
		return nil, err
	}

	err = r.db.Model(&models.Blog{}).
		Where("author_id = ? AND status = ?", authorID, models.StatusApproved).
		Select("COALESCE(SUM(likes), 0)").
		Scan(&stats.TotalLikes).Error
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

// AdminStats summarizes the whole corpus and the review queue.
func (r *BlogRepo) AdminStats() (*AdminStats, error) {
	var stats AdminStats

	if err := r.db.Model(&models.Blog{}).Count(&stats.TotalBlogs).Error; err != nil {
		return nil, err
	}

	err := r.db.Model(&models.Blog{}).
		Where("status = ?", models.StatusPending).
		Count(&stats.PendingReview).Error
	if err != nil {
		return nil, err
	}

	var avg float64
	err = r.db.Model(&models.Blog{}).
		Where("status = ?", models.StatusApproved).
		Select("COALESCE(AVG(ai_score), 0)").
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	stats.AvgAIScore = math.Round(avg*100) / 100

	return &stats, nil
}
