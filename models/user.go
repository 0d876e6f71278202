package models

import (
	"time"
)

// User mirrors the record kept for each identity the external auth provider
// has seen. The ID is the provider's opaque subject, not a locally generated
// UUID, so creation and update share one upsert path keyed by it.
type User struct {
	ID              string    `json:"id" db:"id" gorm:"primaryKey;not null"`
	Email           *string   `json:"email,omitempty" db:"email" gorm:"uniqueIndex"`
	FirstName       *string   `json:"firstName,omitempty" db:"first_name"`
	LastName        *string   `json:"lastName,omitempty" db:"last_name"`
	ProfileImageURL *string   `json:"profileImageUrl,omitempty" db:"profile_image_url"`
	IsAdmin         bool      `json:"isAdmin" db:"is_admin" gorm:"not null;default:false"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}
