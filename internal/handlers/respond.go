// Package handlers contains HTTP request handlers for the vacancy service.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobvault/vacancy-service/internal/apperr"
)

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// respondAppError maps an error kind to its HTTP status with a stable
// message. Unrecognized errors become an opaque 500.
func respondAppError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrAlreadyExists):
		respondError(c, http.StatusBadRequest, apperr.ErrAlreadyExists.Error())
	case errors.Is(err, apperr.ErrInvalidCredentials):
		respondError(c, http.StatusBadRequest, apperr.ErrInvalidCredentials.Error())
	case errors.Is(err, apperr.ErrNotFound):
		respondError(c, http.StatusNotFound, apperr.ErrNotFound.Error())
	case errors.Is(err, apperr.ErrTokenInvalid):
		respondError(c, http.StatusUnauthorized, apperr.ErrTokenInvalid.Error())
	case errors.Is(err, apperr.ErrTokenExpired):
		respondError(c, http.StatusUnauthorized, apperr.ErrTokenExpired.Error())
	case errors.Is(err, apperr.ErrTokenRevoked):
		respondError(c, http.StatusUnauthorized, apperr.ErrTokenRevoked.Error())
	case errors.Is(err, apperr.ErrUpstreamUnavailable):
		respondError(c, http.StatusBadGateway, apperr.ErrUpstreamUnavailable.Error())
	default:
		respondError(c, http.StatusInternalServerError, "internal error")
	}
}
