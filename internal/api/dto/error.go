package dto

import (
	"net/http"

	"github.com/kingrain94/account-api/internal/domain"
)

// Error represents a standard error response
type Error struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"name may not be missing"`
}

func FromFailure(f *domain.Failure) Error {
	return Error{StatusCode: f.StatusCode, Message: f.Message}
}

func InternalError() Error {
	return Error{StatusCode: http.StatusInternalServerError, Message: "An internal server error occurred"}
}
