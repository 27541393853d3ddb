// Package httpx renders the uniform response envelope shared by every
// endpoint: {code, status, message, data, meta}.
package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/sosmedia/api-sosmed/internal/apperrors"
)

type Envelope struct {
	Code    int         `json:"code"`
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    interface{} `json:"meta"`
}

func JSON(w http.ResponseWriter, code int, status, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(Envelope{
		Code:    code,
		Status:  status,
		Message: message,
		Data:    data,
	})
}

func Success(w http.ResponseWriter, code int, message string, data interface{}) {
	JSON(w, code, "success", message, data)
}

// Error maps an error kind to its HTTP status. Messages stay generic so the
// response never reveals more about accounts than login already does.
func Error(w http.ResponseWriter, err error) {
	code := apperrors.CodeOf(err)
	msg := "internal server error"
	if ae, ok := err.(*apperrors.AppError); ok && code != apperrors.CodeInternal && code != apperrors.CodeStorage {
		msg = ae.Message
	}
	JSON(w, StatusOf(code), "error", msg, nil)
}

func StatusOf(code apperrors.Code) int {
	switch code {
	case apperrors.CodeValidation:
		return http.StatusUnprocessableEntity
	case apperrors.CodeInvalidArgument, apperrors.CodeAlreadyExists, apperrors.CodeMissingRefreshToken:
		return http.StatusBadRequest
	case apperrors.CodeNotFound:
		return http.StatusNotFound
	case apperrors.CodeWrongPassword, apperrors.CodeUnauthenticated, apperrors.CodeInvalidRefreshToken:
		return http.StatusUnauthorized
	case apperrors.CodePermissionDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
