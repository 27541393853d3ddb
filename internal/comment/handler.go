package comment

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

// Index lists a post's comments with their replies, newest first.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	postID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperrors.InvalidArg("invalid post id"))
		return
	}

	comments, err := h.Repository.ListByPost(h.DB, postID)
	if err != nil {
		httpx.Error(w, apperrors.Internal("internal server error"))
		return
	}
	httpx.Success(w, http.StatusOK, "comment list", comments)
}

type createRequest struct {
	Comment  string     `json:"comment"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// Store creates a comment; ParentID makes it a reply.
func (h *Handler) Store(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r)

	postID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperrors.InvalidArg("invalid post id"))
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Comment == "" {
		httpx.Error(w, apperrors.Validation("comment is required"))
		return
	}

	c := Comment{
		UserID:   userID,
		PostID:   postID,
		ParentID: req.ParentID,
		Body:     req.Comment,
	}
	if err := h.Repository.Create(h.DB, &c); err != nil {
		httpx.Error(w, apperrors.Internal("internal server error"))
		return
	}
	httpx.Success(w, http.StatusOK, "comment created", c)
}

// Delete removes a comment from a post.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	postID, err := uuid.Parse(vars["id"])
	if err != nil {
		httpx.Error(w, apperrors.InvalidArg("invalid post id"))
		return
	}
	commentID, err := uuid.Parse(vars["commentId"])
	if err != nil {
		httpx.Error(w, apperrors.InvalidArg("invalid comment id"))
		return
	}

	deleted, err := h.Repository.Delete(h.DB, postID, commentID)
	if err != nil {
		httpx.Error(w, apperrors.Internal("internal server error"))
		return
	}
	httpx.Success(w, http.StatusOK, "comment deleted", deleted)
}
