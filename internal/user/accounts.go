package user

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sosmedia/api-sosmed/internal/auth"
)

// AccountSource adapts the user repository to the auth core's Accounts port.
type AccountSource struct {
	DB         *gorm.DB
	Repository Repository
}

func NewAccountSource(db *gorm.DB) *AccountSource {
	return &AccountSource{DB: db, Repository: NewRepository()}
}

func (s *AccountSource) FindByEmail(ctx context.Context, email string) (*auth.Account, error) {
	u, err := s.Repository.FindByEmail(s.DB.WithContext(ctx), email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, auth.ErrEmailNotFound
		}
		return nil, err
	}
	return toAccount(u), nil
}

func (s *AccountSource) FindByID(ctx context.Context, id uuid.UUID) (*auth.Account, error) {
	u, err := s.Repository.FindByID(s.DB.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	return toAccount(u), nil
}

func (s *AccountSource) Create(ctx context.Context, a *auth.Account) error {
	u := &User{
		Name:     a.Name,
		Email:    a.Email,
		Password: a.PasswordHash,
	}
	if err := s.Repository.Create(s.DB.WithContext(ctx), u); err != nil {
		return err
	}
	a.ID = u.ID
	a.CreatedAt = u.CreatedAt
	return nil
}

func toAccount(u *User) *auth.Account {
	return &auth.Account{
		ID:           u.ID,
		Name:         u.Name,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.Password,
		CreatedAt:    u.CreatedAt,
	}
}
