package follow

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Follow records that FollowerID follows UserID.
type Follow struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex:idx_follow_user_follower"`
	FollowerID uuid.UUID `json:"follower_id" gorm:"type:uuid;uniqueIndex:idx_follow_user_follower"`
	CreatedAt  time.Time `json:"created_at"`
}

func (f *Follow) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
