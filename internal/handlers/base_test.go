package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"myblog/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func TestRespondServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load post: %w", services.ErrNotFound), http.StatusNotFound},
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"permission denied", services.ErrPermissionDenied, http.StatusForbidden},
		{"validation", services.ErrValidation, http.StatusBadRequest},
		{"store failure", errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondServiceError(c, tc.err, "Not found")
			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tc.wantStatus)
			}
		})
	}
}
