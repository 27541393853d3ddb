package comment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sosmedia/api-sosmed/internal/user"
)

type Comment struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `json:"user_id" gorm:"type:uuid;index"`
	PostID    uuid.UUID  `json:"post_id" gorm:"type:uuid;index"`
	ParentID  *uuid.UUID `json:"parent_id" gorm:"type:uuid;index"`
	Body      string     `json:"comment"`
	CreatedAt time.Time  `json:"created_at"`

	User    *user.User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Replies []Comment  `json:"replies,omitempty" gorm:"foreignKey:ParentID"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
