package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/budget_tracker/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// statusForError maps service errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidConfig):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNoOwnerSession), errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"error": ...}. Client errors echo the cause; server errors use fallback.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": fallback})
		return
	}
	logger.Warn(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, gin.H{"error": err.Error()})
}

// respondErrorWithResult surfaces read failures next to an empty result so dashboards still render.
func respondErrorWithResult(c *gin.Context, logger *slog.Logger, err error, fallback string, empty any) {
	status := statusForError(err)
	if status != http.StatusServiceUnavailable && status != http.StatusUnauthorized {
		respondError(c, logger, err, fallback)
		return
	}
	logger.Error(fallback, slog.String("error", err.Error()))
	c.JSON(status, gin.H{"error": fallback, "result": empty})
}
