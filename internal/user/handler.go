package user

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/sosmedia/api-sosmed/internal/apperrors"
	"github.com/sosmedia/api-sosmed/internal/auth"
	"github.com/sosmedia/api-sosmed/internal/httpx"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// Index lists every user.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	users, err := h.Repository.ListAll(h.DB)
	if err != nil {
		httpx.Error(w, apperrors.Internal("internal server error"))
		return
	}
	httpx.Success(w, http.StatusOK, "user list", users)
}

// Me returns the authenticated user.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r)
	u, err := h.Repository.FindByID(h.DB, userID)
	if err != nil {
		httpx.Error(w, apperrors.NotFound("user not found"))
		return
	}
	httpx.Success(w, http.StatusOK, "authenticated user", u)
}

// Show returns one user by id.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperrors.InvalidArg("invalid user id"))
		return
	}

	u, err := h.Repository.FindByID(h.DB, id)
	if err != nil {
		httpx.Error(w, apperrors.NotFound("user not found"))
		return
	}
	httpx.Success(w, http.StatusOK, "user detail", u)
}

type updateUsernameRequest struct {
	Username string `json:"username"`
}

// UpdateUsername sets the caller's username.
func (h *Handler) UpdateUsername(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r)

	var req updateUsernameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		httpx.Error(w, apperrors.Validation("username is required"))
		return
	}

	taken, err := h.Repository.UsernameExists(h.DB, req.Username)
	if err != nil {
		httpx.Error(w, apperrors.Internal("internal server error"))
		return
	}
	if taken {
		httpx.Error(w, apperrors.AlreadyExists("username is already taken"))
		return
	}

	if err := h.Repository.UpdateUsername(h.DB, userID, req.Username); err != nil {
		httpx.Error(w, apperrors.Internal("internal server error"))
		return
	}
	httpx.Success(w, http.StatusOK, "username updated", map[string]string{"username": req.Username})
}

// CheckUsername reports whether a username is still available.
func (h *Handler) CheckUsername(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		httpx.Error(w, apperrors.Validation("username is required"))
		return
	}

	taken, err := h.Repository.UsernameExists(h.DB, username)
	if err != nil {
		httpx.Error(w, apperrors.Internal("internal server error"))
		return
	}
	if taken {
		httpx.JSON(w, http.StatusBadRequest, "success", "username is already taken", taken)
		return
	}
	httpx.Success(w, http.StatusOK, "username is available", taken)
}
