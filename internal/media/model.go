package media

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Media struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	PostID    uuid.UUID `json:"post_id" gorm:"type:uuid;index"`
	MediaURL  string    `json:"media_url"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

func (Media) TableName() string { return "post_medias" }

func (m *Media) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
