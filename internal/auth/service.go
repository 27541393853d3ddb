package auth

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/sosmedia/api-sosmed/internal/apperrors"
	"github.com/sosmedia/api-sosmed/internal/utils"
)

// Account is the slice of the user row the auth core consumes. The rest of
// the row (profile, social graph) is owned elsewhere.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Username     *string   `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Accounts is the account lookup/creation port backing the auth core.
type Accounts interface {
	// FindByEmail returns ErrEmailNotFound for unknown addresses.
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	// Create persists a new account and fills in ID and CreatedAt.
	Create(ctx context.Context, a *Account) error
}

// Service implements the session/token lifecycle: credential verification,
// token issuance, refresh rotation and revocation.
type Service struct {
	accounts Accounts
	store    RotationStore
	tokens   *TokenManager
	cookies  CookiePackager
	logger   *slog.Logger
}

func NewService(accounts Accounts, store RotationStore, tokens *TokenManager, cookies CookiePackager, logger *slog.Logger) *Service {
	return &Service{
		accounts: accounts,
		store:    store,
		tokens:   tokens,
		cookies:  cookies,
		logger:   logger,
	}
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// Session is the result of a successful login or refresh. RefreshToken is
// empty when the session was not remembered.
type Session struct {
	User         *Account
	AccessToken  string
	AccessTTL    time.Duration
	RefreshToken string
	Cookies      CookieBundle
}

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Register creates an account with a bcrypt-hashed password. No tokens are
// issued; the caller logs in separately.
func (s *Service) Register(ctx context.Context, name, email, password string) (*Account, error) {
	if name == "" || len(name) > 255 {
		return nil, apperrors.Validation("name is required and must be at most 255 characters")
	}
	if !emailRe.MatchString(email) {
		return nil, apperrors.Validation("a valid email is required")
	}
	if len(password) < 6 {
		return nil, apperrors.Validation("password must be at least 6 characters")
	}

	_, err := s.accounts.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrEmailTaken
	case !apperrors.Is(err, apperrors.CodeNotFound):
		s.logger.Error("account lookup failed", "err", err)
		return nil, apperrors.Internal("internal server error")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, apperrors.Internal("internal server error")
	}

	acct := &Account{Name: name, Email: email, PasswordHash: hash}
	if err := s.accounts.Create(ctx, acct); err != nil {
		s.logger.Error("account create failed", "err", err)
		return nil, apperrors.Internal("internal server error")
	}
	return acct, nil
}

// Login verifies credentials and issues a token pair. Remember selects the
// long-TTL policy and enables refresh-token issuance; a non-remembered login
// also clears any stale rotation slot so no prior refresh token survives it.
func (s *Service) Login(ctx context.Context, in LoginInput) (*Session, error) {
	if in.Email == "" || in.Password == "" {
		return nil, apperrors.Validation("email and password are required")
	}

	acct, err := s.accounts.FindByEmail(ctx, in.Email)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeNotFound) {
			return nil, ErrEmailNotFound
		}
		s.logger.Error("account lookup failed", "err", err)
		return nil, apperrors.Internal("internal server error")
	}

	if !utils.CheckPassword(acct.PasswordHash, in.Password) {
		return nil, ErrWrongPassword
	}

	ttl := s.tokens.AccessTTLFor(in.Remember)
	access, err := s.tokens.Generate(acct.ID, ttl)
	if err != nil {
		s.logger.Error("access token signing failed", "err", err)
		return nil, apperrors.Internal("internal server error")
	}

	var refresh string
	if in.Remember {
		refresh, err = newRefreshToken()
		if err != nil {
			return nil, apperrors.Internal("internal server error")
		}
		err = s.retryStorage(ctx, func() error {
			_, err := s.store.Set(ctx, acct.ID, refresh)
			return err
		})
	} else {
		err = s.retryStorage(ctx, func() error {
			return s.store.Clear(ctx, acct.ID)
		})
	}
	if err != nil {
		return nil, err
	}

	return &Session{
		User:         acct,
		AccessToken:  access,
		AccessTTL:    ttl,
		RefreshToken: refresh,
		Cookies:      s.cookies.Issue(access, ttl, refresh),
	}, nil
}

// Refresh drives the rotation state machine for one presented token. The
// compare-and-swap guarantees that of any number of concurrent calls holding
// the same token, exactly one rotates and the rest are rejected. A consumed
// token can never succeed again; losers must re-authenticate.
func (s *Service) Refresh(ctx context.Context, presented string) (*Session, error) {
	if presented == "" {
		return nil, ErrMissingRefreshToken
	}

	var userID uuid.UUID
	err := s.retryStorage(ctx, func() error {
		var err error
		userID, err = s.store.LookupByValue(ctx, presented)
		return err
	})
	if err != nil {
		return nil, err
	}

	next, err := newRefreshToken()
	if err != nil {
		return nil, apperrors.Internal("internal server error")
	}

	var swapped bool
	err = s.retryStorage(ctx, func() error {
		var err error
		swapped, err = s.store.CompareAndSwap(ctx, userID, presented, next)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !swapped {
		// A concurrent refresh rotated first; treat as stale-token reuse.
		return nil, ErrRefreshTokenInvalid
	}

	acct, err := s.accounts.FindByID(ctx, userID)
	if err != nil {
		s.logger.Error("account lookup failed after rotation", "err", err)
		return nil, apperrors.Internal("internal server error")
	}

	// Refresh tokens only exist for remembered sessions.
	ttl := s.tokens.AccessTTLFor(true)
	access, err := s.tokens.Generate(acct.ID, ttl)
	if err != nil {
		s.logger.Error("access token signing failed", "err", err)
		return nil, apperrors.Internal("internal server error")
	}

	return &Session{
		User:         acct,
		AccessToken:  access,
		AccessTTL:    ttl,
		RefreshToken: next,
		Cookies:      s.cookies.Issue(access, ttl, next),
	}, nil
}

// Logout clears the account's rotation slot. Idempotent. Already-issued
// access tokens stay valid until natural expiry.
func (s *Service) Logout(ctx context.Context, userID uuid.UUID) (CookieBundle, error) {
	err := s.retryStorage(ctx, func() error {
		return s.store.Clear(ctx, userID)
	})
	if err != nil {
		return s.cookies.Expire(), err
	}
	return s.cookies.Expire(), nil
}

// ExpiredCookies is the bundle a handler applies when a refresh attempt is
// rejected and the caller must log in again.
func (s *Service) ExpiredCookies() CookieBundle {
	return s.cookies.Expire()
}

// retryStorage runs op, transparently retrying exactly once when the store
// reports a transient failure. Persistent failure surfaces as an internal
// error, distinct from rejection.
func (s *Service) retryStorage(ctx context.Context, op func() error) error {
	err := op()
	if err == nil || !apperrors.Is(err, apperrors.CodeStorage) {
		return err
	}
	s.logger.Warn("rotation store error, retrying once", "err", err)
	if err = op(); err != nil {
		if apperrors.Is(err, apperrors.CodeStorage) {
			s.logger.Error("rotation store error persisted", "err", err)
			return apperrors.Wrap(apperrors.CodeInternal, "internal server error", err)
		}
		return err
	}
	return nil
}
