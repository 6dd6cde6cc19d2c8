package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hireme/internal/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
		msg    string
	}{
		{"unauthenticated", apperr.New(apperr.ErrUnauthenticated, "Not authenticated"), http.StatusUnauthorized, "UNAUTHORIZED", "Not authenticated"},
		{"forbidden", apperr.New(apperr.ErrForbidden, "Cannot book your own service"), http.StatusForbidden, "FORBIDDEN", "Cannot book your own service"},
		{"not found", apperr.New(apperr.ErrNotFound, "Service not found"), http.StatusNotFound, "NOT_FOUND", "Service not found"},
		{"validation", apperr.Validation("Price must be greater than 0"), http.StatusBadRequest, "VALIDATION_ERROR", "Price must be greater than 0"},
		{"exists", apperr.New(apperr.ErrAlreadyExists, "Profile already exists"), http.StatusConflict, "ALREADY_EXISTS", "Profile already exists"},
		{"wrapped", fmt.Errorf("load: %w", apperr.New(apperr.ErrNotFound, "Booking not found")), http.StatusNotFound, "NOT_FOUND", "load: Booking not found"},
		{"internal", errors.New("db is down"), http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			FromError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, tt.msg, body.Error.Message)
		})
	}
}
