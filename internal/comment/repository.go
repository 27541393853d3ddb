package comment

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Repository interface {
	Create(db *gorm.DB, c *Comment) error
	ListByPost(db *gorm.DB, postID uuid.UUID) ([]Comment, error)
	Delete(db *gorm.DB, postID, commentID uuid.UUID) (int64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, c *Comment) error {
	if err := db.Create(c).Error; err != nil {
		return errors.Wrap(err, "comment.Repository.Create")
	}
	return nil
}

func (r *repositoryImpl) ListByPost(db *gorm.DB, postID uuid.UUID) ([]Comment, error) {
	var comments []Comment
	err := db.Where("post_id = ?", postID).
		Preload("User").
		Preload("Replies").
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, errors.Wrap(err, "comment.Repository.ListByPost")
	}
	return comments, nil
}

func (r *repositoryImpl) Delete(db *gorm.DB, postID, commentID uuid.UUID) (int64, error) {
	res := db.Where("id = ? AND post_id = ?", commentID, postID).Delete(&Comment{})
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "comment.Repository.Delete")
	}
	return res.RowsAffected, nil
}
