package auth

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/sosmedia/api-sosmed/internal/apperrors"
)

// RotationStore is the single mutable cell holding an account's one valid
// refresh token. All rotation goes through CompareAndSwap or Clear; Set is
// reserved for fresh logins, where no prior value is being raced against.
//
// TODO: persist a sha256 of the token instead of the raw value.
type RotationStore interface {
	// Set unconditionally overwrites the slot and returns the previous value.
	Set(ctx context.Context, userID uuid.UUID, value string) (prev *string, err error)
	// CompareAndSwap replaces the slot only if it still equals expected.
	// The returned bool reports whether the swap happened.
	CompareAndSwap(ctx context.Context, userID uuid.UUID, expected, next string) (bool, error)
	// Clear empties the slot. Clearing an empty slot is a no-op success.
	Clear(ctx context.Context, userID uuid.UUID) error
	// LookupByValue resolves a presented token to its owning account.
	// Unknown values yield ErrRefreshTokenInvalid.
	LookupByValue(ctx context.Context, value string) (uuid.UUID, error)
}

// GormRotationStore keeps the slot in users.refresh_token. The compare-and-
// swap is a single UPDATE qualified by the expected value, checked through
// the affected-row count, so the lost-update window is closed at the
// storage boundary rather than by caller discipline.
type GormRotationStore struct {
	db *gorm.DB
}

func NewRotationStore(db *gorm.DB) *GormRotationStore {
	return &GormRotationStore{db: db}
}

func (s *GormRotationStore) Set(ctx context.Context, userID uuid.UUID, value string) (*string, error) {
	// One statement: the prior value is captured by the same UPDATE that
	// overwrites it, so prev cannot be stale under concurrent writers.
	var prev *string
	row := s.db.WithContext(ctx).Raw(`
		UPDATE users u SET refresh_token = ?
		FROM (SELECT id, refresh_token FROM users WHERE id = ? FOR UPDATE) old
		WHERE u.id = old.id
		RETURNING old.refresh_token`, value, userID).Row()
	if err := row.Scan(&prev); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, apperrors.Storage("rotation slot write failed", errors.Wrap(err, "auth.RotationStore.Set"))
	}
	return prev, nil
}

func (s *GormRotationStore) CompareAndSwap(ctx context.Context, userID uuid.UUID, expected, next string) (bool, error) {
	res := s.db.WithContext(ctx).Table("users").
		Where("id = ? AND refresh_token = ?", userID, expected).
		Update("refresh_token", next)
	if res.Error != nil {
		return false, apperrors.Storage("rotation slot swap failed", errors.Wrap(res.Error, "auth.RotationStore.CompareAndSwap"))
	}
	return res.RowsAffected == 1, nil
}

func (s *GormRotationStore) Clear(ctx context.Context, userID uuid.UUID) error {
	res := s.db.WithContext(ctx).Table("users").
		Where("id = ?", userID).
		Update("refresh_token", nil)
	if res.Error != nil {
		return apperrors.Storage("rotation slot clear failed", errors.Wrap(res.Error, "auth.RotationStore.Clear"))
	}
	return nil
}

func (s *GormRotationStore) LookupByValue(ctx context.Context, value string) (uuid.UUID, error) {
	// users.refresh_token carries a unique index, so this is a point lookup.
	var id uuid.UUID
	row := s.db.WithContext(ctx).Table("users").
		Select("id").
		Where("refresh_token = ?", value).
		Row()
	if err := row.Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return uuid.Nil, ErrRefreshTokenInvalid
		}
		return uuid.Nil, apperrors.Storage("rotation slot lookup failed", errors.Wrap(err, "auth.RotationStore.LookupByValue"))
	}
	return id, nil
}
