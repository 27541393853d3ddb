package post

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

// Index lists every post with media, likes, author and comments.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Repository.ListAll(h.DB)
	if err != nil {
		httpx.Error(w, apperrors.Internal("internal server error"))
		return
	}
	httpx.Success(w, http.StatusOK, "post list", posts)
}

type captionRequest struct {
	Caption string `json:"caption"`
}

// Store creates a post for the caller.
func (h *Handler) Store(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r)

	var req captionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperrors.Validation("invalid request body"))
		return
	}

	p := Post{UserID: userID, Caption: req.Caption}
	if err := h.Repository.Create(h.DB, &p); err != nil {
		httpx.Error(w, apperrors.Internal("internal server error"))
		return
	}
	httpx.Success(w, http.StatusOK, "post created", p)
}

// Show returns one post with its relations.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperrors.InvalidArg("invalid post id"))
		return
	}

	p, err := h.Repository.FindByID(h.DB, id)
	if err != nil {
		httpx.Error(w, apperrors.NotFound("post not found"))
		return
	}
	httpx.Success(w, http.StatusOK, "post detail", p)
}

// Update changes a post's caption. Owner only.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r)

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperrors.InvalidArg("invalid post id"))
		return
	}

	ownerID, err := h.Repository.OwnerOf(h.DB, id)
	if err != nil {
		httpx.Error(w, apperrors.NotFound("post not found"))
		return
	}
	if ownerID != userID {
		httpx.Error(w, apperrors.Forbidden("cannot update another user's post"))
		return
	}

	var req captionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperrors.Validation("invalid request body"))
		return
	}

	if err := h.Repository.UpdateCaption(h.DB, id, req.Caption); err != nil {
		httpx.Error(w, apperrors.Internal("internal server error"))
		return
	}
	httpx.Success(w, http.StatusOK, "post updated", nil)
}

// Destroy deletes a post. Owner only.
func (h *Handler) Destroy(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r)

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperrors.InvalidArg("invalid post id"))
		return
	}

	ownerID, err := h.Repository.OwnerOf(h.DB, id)
	if err != nil {
		httpx.Error(w, apperrors.NotFound("post not found"))
		return
	}
	if ownerID != userID {
		httpx.Error(w, apperrors.Forbidden("cannot delete another user's post"))
		return
	}

	if err := h.Repository.Delete(h.DB, id); err != nil {
		httpx.Error(w, apperrors.Internal("internal server error"))
		return
	}
	httpx.Success(w, http.StatusOK, "post deleted", nil)
}
