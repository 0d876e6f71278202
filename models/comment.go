package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is an append-only remark on a blog. No edit or delete surface.
type Comment struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	AuthorID  string    `json:"authorId" db:"author_id" gorm:"not null"`
	Author    *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
	BlogID    uuid.UUID `json:"blogId" db:"blog_id" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
