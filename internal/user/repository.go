package user

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Repository interface {
	Create(db *gorm.DB, u *User) error
	FindByEmail(db *gorm.DB, email string) (*User, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*User, error)
	ListAll(db *gorm.DB) ([]User, error)
	UpdateUsername(db *gorm.DB, id uuid.UUID, username string) error
	UsernameExists(db *gorm.DB, username string) (bool, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, u *User) error {
	if err := db.Create(u).Error; err != nil {
		return errors.Wrap(err, "user.Repository.Create")
	}
	return nil
}

func (r *repositoryImpl) FindByEmail(db *gorm.DB, email string) (*User, error) {
	var u User
	if err := db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uuid.UUID) (*User, error) {
	var u User
	if err := db.First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]User, error) {
	var users []User
	if err := db.Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "user.Repository.ListAll")
	}
	return users, nil
}

func (r *repositoryImpl) UpdateUsername(db *gorm.DB, id uuid.UUID, username string) error {
	if err := db.Model(&User{}).Where("id = ?", id).Update("username", username).Error; err != nil {
		return errors.Wrap(err, "user.Repository.UpdateUsername")
	}
	return nil
}

func (r *repositoryImpl) UsernameExists(db *gorm.DB, username string) (bool, error) {
	var count int64
	if err := db.Model(&User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "user.Repository.UsernameExists")
	}
	return count > 0, nil
}
