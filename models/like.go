package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like is the ground-truth fact that a user likes a blog. At most one row may
// exist per (user, blog); the unique index is the backstop for the toggle's
// check-then-act sequence. Blog.Likes is a derived cache of these rows.
type Like struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	UserID    string    `json:"userId" db:"user_id" gorm:"not null;uniqueIndex:idx_likes_user_blog"`
	BlogID    uuid.UUID `json:"blogId" db:"blog_id" gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_blog"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
