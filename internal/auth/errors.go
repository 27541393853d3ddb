package auth

import "github.com/sosmedia/api-sosmed/internal/apperrors"

var (
	ErrEmailNotFound = apperrors.NotFound("email not found")
	ErrEmailTaken    = apperrors.AlreadyExists("email is already registered")
	ErrWrongPassword = apperrors.New(apperrors.CodeWrongPassword, "wrong password")

	ErrMissingRefreshToken = apperrors.New(apperrors.CodeMissingRefreshToken, "refresh token not found")
	// ErrRefreshTokenInvalid covers unknown tokens and tokens already rotated
	// out from under the caller; the two are indistinguishable on purpose.
	ErrRefreshTokenInvalid = apperrors.New(apperrors.CodeInvalidRefreshToken, "refresh token is invalid or expired")
)
