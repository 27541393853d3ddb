package profile

import (
	"encoding/json"
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

type updateRequest struct {
	Bio     *string `json:"bio"`
	Website *string `json:"website"`
	Avatar  *string `json:"avatar"`
}

// Update sets the caller's profile fields, creating the profile on first use.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r)

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, apperrors.Validation("invalid request body"))
		return
	}

	fields := map[string]interface{}{}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Website != nil {
		fields["website"] = *req.Website
	}
	if req.Avatar != nil {
		fields["avatar"] = *req.Avatar
	}

	p, err := h.Repository.Upsert(h.DB, userID, fields)
	if err != nil {
		httpx.Error(w, apperrors.Internal("internal server error"))
		return
	}
	httpx.Success(w, http.StatusOK, "profile updated", p)
}

// Show returns a user together with their profile, if any.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		httpx.Error(w, apperrors.InvalidArg("invalid user id"))
		return
	}

	u, err := h.Users.FindByID(h.DB, id)
	if err != nil {
		httpx.Error(w, apperrors.NotFound("user not found"))
		return
	}

	p, err := h.Repository.FindByUserID(h.DB, id)
	if err != nil && err != gorm.ErrRecordNotFound {
		httpx.Error(w, apperrors.Internal("internal server error"))
		return
	}

	httpx.Success(w, http.StatusOK, "user detail", map[string]interface{}{
		"user":    u,
		"profile": p,
	})
}
