package handlers

import (
	"errors"
	"net/http"

	"myblog/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// notFoundMsg names the missing subject for 404s; gorm's record-not-found
// maps there too, so handlers can pass lookup errors straight through.
// Anything outside the taxonomy is a store failure.
func respondServiceError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		respondError(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, services.ErrPermissionDenied):
		respondError(c, http.StatusForbidden, "Permission denied")
	case errors.Is(err, services.ErrValidation):
		respondError(c, http.StatusBadRequest, "Invalid input")
	default:
		respondError(c, http.StatusInternalServerError, "Database error: "+err.Error())
	}
}
