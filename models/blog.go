package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogStatus is the moderation state of a blog. Only approved blogs are
// visible to the public feed, search, and trending.
type BlogStatus string

const (
	StatusDraft    BlogStatus = "draft"
	StatusPending  BlogStatus = "pending"
	StatusApproved BlogStatus = "approved"
	StatusRejected BlogStatus = "rejected"
)

// Valid reports whether s is one of the known moderation states.
func (s BlogStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Sentiment values produced by the content classifier.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// ValidSentiment reports whether s is a classifier sentiment label.
func ValidSentiment(s string) bool {
	return s == SentimentPositive || s == SentimentNeutral || s == SentimentNegative
}

// BlogCategories is the fixed set of categories an author can file a post under.
var BlogCategories = []string{
	"technology",
	"lifestyle",
	"travel",
	"food",
	"business",
	"health",
	"education",
	"other",
}

// ValidCategory reports whether c is one of BlogCategories.
func ValidCategory(c string) bool {
	for _, known := range BlogCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Blog is the central entity: an article plus its engagement counters and the
// classifier verdict recorded against it. Views and Likes are denormalized
// caches; the likes table is the source of truth for Likes.
type Blog struct {
	ID              uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title           string     `json:"title" db:"title" gorm:"type:text;not null"`
	Content         string     `json:"content" db:"content" gorm:"type:text;not null"`
	Excerpt         *string    `json:"excerpt,omitempty" db:"excerpt" gorm:"type:text"`
	Category        string     `json:"category" db:"category" gorm:"not null"`
	AuthorID        string     `json:"authorId" db:"author_id" gorm:"not null;index"`
	Author          *User      `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
	Status          BlogStatus `json:"status" db:"status" gorm:"not null;default:draft;index"`
	Views           int        `json:"views" db:"views" gorm:"not null;default:0"`
	Likes           int        `json:"likes" db:"likes" gorm:"not null;default:0"`
	AISentiment     *string    `json:"aiSentiment,omitempty" db:"ai_sentiment"`
	AIScore         *int       `json:"aiScore,omitempty" db:"ai_score"`
	AIAnalysis      *string    `json:"aiAnalysis,omitempty" db:"ai_analysis" gorm:"type:text"`
	RejectionReason *string    `json:"rejectionReason,omitempty" db:"rejection_reason" gorm:"type:text"`
	PublishedAt     *time.Time `json:"publishedAt,omitempty" db:"published_at"`
	CreatedAt       time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time  `json:"updatedAt" db:"updated_at"`
}

// BeforeCreate assigns the ID application-side so every supported database
// (including the sqlite used in tests) gets the same UUID semantics.
func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
