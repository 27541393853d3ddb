package auth

import (
	"encoding/json"
	"net/http"

	"github.com/sosmedia/api-sosmed/internal/apperrors"
	"github.com/sosmedia/api-sosmed/internal/httpx"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account. No tokens are issued here.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperrors.Validation("invalid request body"))
		return
	}

	acct, err := h.Service.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.Success(w, http.StatusOK, "register successful", acct)
}

// Login verifies credentials and delivers the token pair as cookies.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in LoginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.Error(w, apperrors.Validation("invalid request body"))
		return
	}

	sess, err := h.Service.Login(r.Context(), in)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	sess.Cookies.Apply(w)
	httpx.Success(w, http.StatusOK, "login successful", map[string]interface{}{
		"user":     sess.User,
		"token":    sess.AccessToken,
		"remember": in.Remember,
	})
}

// Refresh rotates the token pair presented in the refresh cookie. On
// rejection both cookies are cleared and the caller must log in again.
// Infrastructure failures are not rejections: the slot still holds the
// token, so the cookies stay for a later retry.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var presented string
	if c, err := r.Cookie(RefreshCookie); err == nil {
		presented = c.Value
	}

	sess, err := h.Service.Refresh(r.Context(), presented)
	if err != nil {
		if apperrors.Is(err, apperrors.CodeInvalidRefreshToken) {
			h.Service.ExpiredCookies().Apply(w)
		}
		httpx.Error(w, err)
		return
	}

	sess.Cookies.Apply(w)
	httpx.Success(w, http.StatusOK, "token refreshed", map[string]interface{}{
		"user":     sess.User,
		"token":    sess.AccessToken,
		"remember": true,
	})
}

// Logout revokes the caller's rotation slot and deletes both cookies.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserID(r)
	if !ok {
		httpx.Error(w, apperrors.Unauthorized("authentication required"))
		return
	}

	bundle, err := h.Service.Logout(r.Context(), userID)
	bundle.Apply(w)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	httpx.Success(w, http.StatusOK, "logout successful", nil)
}
