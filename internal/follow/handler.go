package follow

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/sosmedia/api-sosmed/internal/apperrors"
	"github.com/sosmedia/api-sosmed/internal/auth"
	"github.com/sosmedia/api-sosmed/internal/httpx"
	"github.com/sosmedia/api-sosmed/internal/user"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Users      user.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository(), Users: user.NewRepository()}
}

// Follow makes the caller follow the target user. Idempotent.
func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) {
	me, _ := auth.UserID(r)

	targetID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperrors.InvalidArg("invalid user id"))
		return
	}
	if targetID == me {
		httpx.Error(w, apperrors.InvalidArg("cannot follow yourself"))
		return
	}

	if _, err := h.Users.FindByID(h.DB, targetID); err != nil {
		httpx.Error(w, apperrors.NotFound("user not found"))
		return
	}

	if _, err := h.Repository.FirstOrCreate(h.DB, targetID, me); err != nil {
		httpx.Error(w, apperrors.Internal("internal server error"))
		return
	}
	httpx.Success(w, http.StatusOK, "followed", nil)
}

// Unfollow removes the caller's follow of the target user.
func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request) {
	me, _ := auth.UserID(r)

	targetID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperrors.InvalidArg("invalid user id"))
		return
	}

	if err := h.Repository.Delete(h.DB, targetID, me); err != nil {
		httpx.Error(w, apperrors.Internal("internal server error"))
		return
	}
	httpx.Success(w, http.StatusOK, "unfollowed", nil)
}

// Followers lists who follows the user in the path.
func (h *Handler) Followers(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperrors.InvalidArg("invalid user id"))
		return
	}

	rows, err := h.Repository.ListFollowers(h.DB, userID)
	if err != nil {
		httpx.Error(w, apperrors.Internal("internal server error"))
		return
	}
	httpx.Success(w, http.StatusOK, "follower list", rows)
}

// Following lists who the user in the path follows.
func (h *Handler) Following(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperrors.InvalidArg("invalid user id"))
		return
	}

	rows, err := h.Repository.ListFollowing(h.DB, userID)
	if err != nil {
		httpx.Error(w, apperrors.Internal("internal server error"))
		return
	}
	httpx.Success(w, http.StatusOK, "following list", rows)
}
