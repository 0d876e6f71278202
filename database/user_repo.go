package database

import (
	"errors"

	"github.com/inkforge/inkforge-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// FindByID returns a user by the identity provider's subject, or nil when no
// such user has logged in yet.
func (r *UserRepo) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Upsert creates or refreshes a user record keyed by the identity subject.
// Creation and update share this one path; the is_admin flag is deliberately
// excluded from the update set so a login callback cannot grant admin.
func (r *UserRepo) Upsert(user *models.User) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(user).Error
}
