package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name     string    `json:"name"`
	Username *string   `json:"username" gorm:"uniqueIndex"`
	Email    string    `json:"email" gorm:"uniqueIndex"`
	Password string    `json:"-"`
	// RefreshToken is the rotation slot: the single currently valid refresh
	// token, or NULL when the last login did not ask to be remembered.
	RefreshToken *string   `json:"-" gorm:"uniqueIndex"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
