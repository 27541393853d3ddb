package like

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Repository interface {
	// FirstOrCreate makes liking idempotent: liking twice is a no-op.
	FirstOrCreate(db *gorm.DB, userID, postID uuid.UUID) (*Like, error)
	Delete(db *gorm.DB, userID, postID uuid.UUID) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) FirstOrCreate(db *gorm.DB, userID, postID uuid.UUID) (*Like, error) {
	var l Like
	err := db.Where(Like{UserID: userID, PostID: postID}).FirstOrCreate(&l).Error
	if err != nil {
		return nil, errors.Wrap(err, "like.Repository.FirstOrCreate")
	}
	return &l, nil
}

func (r *repositoryImpl) Delete(db *gorm.DB, userID, postID uuid.UUID) error {
	err := db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&Like{}).Error
	if err != nil {
		return errors.Wrap(err, "like.Repository.Delete")
	}
	return nil
}
