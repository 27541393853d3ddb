package profile

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Repository interface {
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*Profile, error)
	// Upsert applies the given fields to the user's profile, creating the
	// row first if it does not exist yet.
	Upsert(db *gorm.DB, userID uuid.UUID, fields map[string]interface{}) (*Profile, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) FindByUserID(db *gorm.DB, userID uuid.UUID) (*Profile, error) {
	var p Profile
	if err := db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repositoryImpl) Upsert(db *gorm.DB, userID uuid.UUID, fields map[string]interface{}) (*Profile, error) {
	var p Profile
	if err := db.Where(Profile{UserID: userID}).FirstOrCreate(&p).Error; err != nil {
		return nil, errors.Wrap(err, "profile.Repository.Upsert")
	}
	if len(fields) > 0 {
		if err := db.Model(&p).Updates(fields).Error; err != nil {
			return nil, errors.Wrap(err, "profile.Repository.Upsert")
		}
	}
	return &p, nil
}
