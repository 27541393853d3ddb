package like

import (
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

// Like marks a post as liked by the caller. Idempotent.
func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r)

	postID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperrors.InvalidArg("invalid post id"))
		return
	}

	if _, err := h.Repository.FirstOrCreate(h.DB, userID, postID); err != nil {
		httpx.Error(w, apperrors.Internal("internal server error"))
		return
	}
	httpx.Success(w, http.StatusOK, "liked", nil)
}

// Unlike removes the caller's like from a post.
func (h *Handler) Unlike(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r)

	postID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperrors.InvalidArg("invalid post id"))
		return
	}

	if err := h.Repository.Delete(h.DB, userID, postID); err != nil {
		httpx.Error(w, apperrors.Internal("internal server error"))
		return
	}
	httpx.Success(w, http.StatusOK, "unliked", nil)
}
