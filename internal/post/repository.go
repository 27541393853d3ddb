package post

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Repository interface {
	Create(db *gorm.DB, p *Post) error
	ListAll(db *gorm.DB) ([]Post, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*Post, error)
	// OwnerOf resolves just the owning user id; also serves the media
	// package's ownership checks.
	OwnerOf(db *gorm.DB, id uuid.UUID) (uuid.UUID, error)
	UpdateCaption(db *gorm.DB, id uuid.UUID, caption string) error
	Delete(db *gorm.DB, id uuid.UUID) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Media").
		Preload("Likes").
		Preload("User").
		Preload("Comments", func(q *gorm.DB) *gorm.DB {
			return q.Preload("User").Order("created_at DESC")
		})
}

func (r *repositoryImpl) Create(db *gorm.DB, p *Post) error {
	if err := db.Create(p).Error; err != nil {
		return errors.Wrap(err, "post.Repository.Create")
	}
	return nil
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Post, error) {
	var posts []Post
	if err := withRelations(db).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, errors.Wrap(err, "post.Repository.ListAll")
	}
	return posts, nil
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uuid.UUID) (*Post, error) {
	var p Post
	if err := withRelations(db).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repositoryImpl) OwnerOf(db *gorm.DB, id uuid.UUID) (uuid.UUID, error) {
	var p Post
	if err := db.Select("id", "user_id").First(&p, "id = ?", id).Error; err != nil {
		return uuid.Nil, err
	}
	return p.UserID, nil
}

func (r *repositoryImpl) UpdateCaption(db *gorm.DB, id uuid.UUID, caption string) error {
	if err := db.Model(&Post{}).Where("id = ?", id).Update("caption", caption).Error; err != nil {
		return errors.Wrap(err, "post.Repository.UpdateCaption")
	}
	return nil
}

func (r *repositoryImpl) Delete(db *gorm.DB, id uuid.UUID) error {
	if err := db.Delete(&Post{}, "id = ?", id).Error; err != nil {
		return errors.Wrap(err, "post.Repository.Delete")
	}
	return nil
}
