package post

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sosmedia/api-sosmed/internal/comment"
	"github.com/sosmedia/api-sosmed/internal/like"
	"github.com/sosmedia/api-sosmed/internal/media"
	"github.com/sosmedia/api-sosmed/internal/user"
)

type Post struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;index"`
	Caption   string    `json:"caption"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	User     *user.User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Media    []media.Media     `json:"media" gorm:"foreignKey:PostID"`
	Comments []comment.Comment `json:"comments" gorm:"foreignKey:PostID"`
	Likes    []like.Like       `json:"likes" gorm:"foreignKey:PostID"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
