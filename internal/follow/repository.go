package follow

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Repository interface {
	// FirstOrCreate makes following idempotent.
	FirstOrCreate(db *gorm.DB, userID, followerID uuid.UUID) (*Follow, error)
	Delete(db *gorm.DB, userID, followerID uuid.UUID) error
	// ListFollowers returns the follow rows pointing at userID.
	ListFollowers(db *gorm.DB, userID uuid.UUID) ([]Follow, error)
	// ListFollowing returns the follow rows created by followerID.
	ListFollowing(db *gorm.DB, followerID uuid.UUID) ([]Follow, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) FirstOrCreate(db *gorm.DB, userID, followerID uuid.UUID) (*Follow, error) {
	var f Follow
	err := db.Where(Follow{UserID: userID, FollowerID: followerID}).FirstOrCreate(&f).Error
	if err != nil {
		return nil, errors.Wrap(err, "follow.Repository.FirstOrCreate")
	}
	return &f, nil
}

func (r *repositoryImpl) Delete(db *gorm.DB, userID, followerID uuid.UUID) error {
	err := db.Where("user_id = ? AND follower_id = ?", userID, followerID).Delete(&Follow{}).Error
	if err != nil {
		return errors.Wrap(err, "follow.Repository.Delete")
	}
	return nil
}

func (r *repositoryImpl) ListFollowers(db *gorm.DB, userID uuid.UUID) ([]Follow, error) {
	var rows []Follow
	if err := db.Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "follow.Repository.ListFollowers")
	}
	return rows, nil
}

func (r *repositoryImpl) ListFollowing(db *gorm.DB, followerID uuid.UUID) ([]Follow, error) {
	var rows []Follow
	if err := db.Where("follower_id = ?", followerID).Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "follow.Repository.ListFollowing")
	}
	return rows, nil
}
