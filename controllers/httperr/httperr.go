// Package httperr owns the translation from domain errors to HTTP responses.
// DAOs raise typed errors and know nothing about status codes; every handler
// funnels its DAO failures through Abort so the {error, status} body stays
// uniform across the API.
package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MicheleCazzola/ezelectronics-sub001/daos"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, daos.ErrProductNotFound),
		errors.Is(err, daos.ErrCartNotFound),
		errors.Is(err, daos.ErrProductNotInCart),
		errors.Is(err, daos.ErrReviewNotFound),
		errors.Is(err, daos.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, daos.ErrProductAlreadyExists),
		errors.Is(err, daos.ErrReviewAlreadyExists),
		errors.Is(err, daos.ErrUserAlreadyExists),
		errors.Is(err, daos.ErrCartAlreadyExists),
		errors.Is(err, daos.ErrLowProductStock):
		return http.StatusConflict
	case errors.Is(err, daos.ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, daos.ErrDateOrder):
		return http.StatusBadRequest
	case errors.Is(err, daos.ErrInvalidInput):
		return http.StatusUnprocessableEntity
	case errors.Is(err, daos.ErrBadCredentials),
		errors.Is(err, daos.ErrUnauthorizedUser):
		return http.StatusUnauthorized
	default:
		return http.StatusServiceUnavailable
	}
}

// Abort writes the JSON error body for err and stops the handler chain.
func Abort(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusServiceUnavailable {
		// Don't leak driver internals to clients.
		msg = "Internal server error"
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg, "status": status})
}
