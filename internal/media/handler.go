package media

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

// PostSource resolves a post's owner without importing the post package.
type PostSource interface {
	OwnerOf(db *gorm.DB, postID uuid.UUID) (uuid.UUID, error)
}

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Posts      PostSource
}

func NewHandler(db *gorm.DB, posts PostSource) *Handler {
	return &Handler{DB: db, Repository: NewRepository(), Posts: posts}
}

type attachRequest struct {
	MediaURL string `json:"media_url"`
	Type     string `json:"type"`
}

// Attach records a media row for a post. The file itself lives in external
// storage; only its URL and type are persisted here. Owner only.
func (h *Handler) Attach(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r)

	postID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperrors.InvalidArg("invalid post id"))
		return
	}

	ownerID, err := h.Posts.OwnerOf(h.DB, postID)
	if err != nil {
		httpx.Error(w, apperrors.NotFound("post not found"))
		return
	}
	if ownerID != userID {
		httpx.Error(w, apperrors.Forbidden("cannot upload media to another user's post"))
		return
	}

	var req attachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MediaURL == "" {
		httpx.Error(w, apperrors.Validation("media_url is required"))
		return
	}
	if req.Type == "" {
		req.Type = "image"
	}

	m := Media{PostID: postID, MediaURL: req.MediaURL, Type: req.Type}
	if err := h.Repository.Create(h.DB, &m); err != nil {
		httpx.Error(w, apperrors.Internal("internal server error"))
		return
	}
	httpx.Success(w, http.StatusOK, "media uploaded", m)
}

// Index lists a post's media rows.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperrors.InvalidArg("invalid post id"))
		return
	}

	items, err := h.Repository.ListByPost(h.DB, postID)
	if err != nil {
		httpx.Error(w, apperrors.Internal("internal server error"))
		return
	}
	httpx.Success(w, http.StatusOK, "media list", items)
}
