package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"launchsim/internal/simulator"
)

func intQuery(c *gin.Context, key string, def int) int {
	if val := c.Query(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return def
}

func paginationMeta(limit, offset int, total int64) map[string]any {
	if limit <= 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	hasNext := int64(offset+limit) < total
	return map[string]any{
		"limit":    limit,
		"offset":   offset,
		"total":    total,
		"has_next": hasNext,
	}
}

// statusFor maps domain errors to HTTP statuses. Anything unclassified is a
// storage failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, simulator.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, simulator.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, simulator.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, simulator.ErrInvalidTransition), errors.Is(err, simulator.ErrVersionConflict):
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

func errorMeta(err error) map[string]any {
	kind := ""
	switch {
	case errors.Is(err, simulator.ErrValidation):
		kind = "validation"
	case errors.Is(err, simulator.ErrForbidden):
		kind = "forbidden"
	case errors.Is(err, simulator.ErrNotFound):
		kind = "not_found"
	case errors.Is(err, simulator.ErrInvalidTransition):
		kind = "invalid_transition"
	case errors.Is(err, simulator.ErrVersionConflict):
		kind = "version_conflict"
	default:
		return nil
	}
	return map[string]any{"error": kind}
}

func ServiceError(c *gin.Context, err error) {
	Error(c, statusFor(err), err.Error(), errorMeta(err))
}
