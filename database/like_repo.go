package database

import (
	"github.com/google/uuid"
	"github.com/inkforge/inkforge-backend/models"
	"gorm.io/gorm"
)

type LikeRepo struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) *LikeRepo {
	return &LikeRepo{db}
}

// Toggle flips the like state for (userID, blogID) and returns the new state.
// The fact table is the source of truth; the cached Blog.Likes counter moves
// in the same transaction, and only when the fact mutation actually happened.
// The unique index on (user_id, blog_id) is the backstop against two
// concurrent toggles both inserting.
func (r *LikeRepo) Toggle(userID string, blogID uuid.UUID) (liked bool, err error) {
	err = r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND blog_id = ?", userID, blogID).
			Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			liked = false
			return tx.Model(&models.Blog{}).
				Where("id = ?", blogID).
				UpdateColumn("likes", gorm.Expr("likes - ?", 1)).Error
		}

		like := &models.Like{UserID: userID, BlogID: blogID}
		if err := tx.Create(like).Error; err != nil {
			return err
		}

		liked = true
		return tx.Model(&models.Blog{}).
			Where("id = ?", blogID).
			UpdateColumn("likes", gorm.Expr("likes + ?", 1)).Error
	})
	return liked, err
}

// CountByBlog recomputes the number of like facts for a blog. Used to detect
// drift against the cached Blog.Likes counter, not on the hot path.
func (r *LikeRepo) CountByBlog(blogID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.Model(&models.Like{}).Where("blog_id = ?", blogID).Count(&n).Error
	return n, err
}

// ListBlogIDsByUser returns the ids of every blog the user currently likes.
func (r *LikeRepo) ListBlogIDsByUser(userID string) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	err := r.db.Model(&models.Like{}).
		Where("user_id = ?", userID).
		Pluck("blog_id", &ids).Error
	return ids, err
}
