package media

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Repository interface {
	Create(db *gorm.DB, m *Media) error
	ListByPost(db *gorm.DB, postID uuid.UUID) ([]Media, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, m *Media) error {
	if err := db.Create(m).Error; err != nil {
		return errors.Wrap(err, "media.Repository.Create")
	}
	return nil
}

func (r *repositoryImpl) ListByPost(db *gorm.DB, postID uuid.UUID) ([]Media, error) {
	var items []Media
	if err := db.Where("post_id = ?", postID).Find(&items).Error; err != nil {
		return nil, errors.Wrap(err, "media.Repository.ListByPost")
	}
	return items, nil
}
