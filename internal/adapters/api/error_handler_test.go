package api

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"breezy.app/internal/mocks"
	"breezy.app/pkg/errors"
)

func TestHTTPServerAdapter_HandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		err             error
		expectedCode    int
		expectedMessage string
	}{
		{name: "Validation", err: errors.NewValidationError("validation failed"), expectedCode: http.StatusBadRequest, expectedMessage: "validation failed"},
		{name: "NotFound", err: errors.NewNotFoundError("resource not found"), expectedCode: http.StatusNotFound, expectedMessage: "resource not found"},
		{name: "AlreadyExists", err: errors.NewAlreadyExistsError("resource already exists"), expectedCode: http.StatusConflict, expectedMessage: "resource already exists"},
		{name: "RemoteNotFound", err: errors.NewRemoteError(http.StatusNotFound, "city not found"), expectedCode: http.StatusNotFound, expectedMessage: "city not found"},
		{name: "RemoteUnauthorized", err: errors.NewRemoteError(http.StatusUnauthorized, ""), expectedCode: http.StatusBadGateway, expectedMessage: "HTTP Error - status 401"},
		{name: "Transport", err: errors.NewTransportError("timeout", nil), expectedCode: http.StatusBadGateway, expectedMessage: "Weather service unavailable"},
		{name: "Decode", err: errors.NewDecodeError("missing main.temp", nil), expectedCode: http.StatusBadGateway, expectedMessage: "Weather service unavailable"},
		{name: "Database", err: errors.NewDatabaseError("database connection failed", nil), expectedCode: http.StatusInternalServerError, expectedMessage: "Internal server error"},
		{name: "Configuration", err: errors.NewConfigurationError("configuration error", nil), expectedCode: http.StatusInternalServerError, expectedMessage: "Internal server error"},
		{name: "Unknown", err: errors.New(errors.ErrorTypeUnknown, "generic error"), expectedCode: http.StatusInternalServerError, expectedMessage: "Internal server error"},
		{name: "PlainError", err: stderrors.New("boom"), expectedCode: http.StatusInternalServerError, expectedMessage: "Internal server error"},
		{name: "WrappedNotFound", err: fmt.Errorf("refresh weather for Paris: %w", errors.NewRemoteError(http.StatusNotFound, "city not found")), expectedCode: http.StatusNotFound, expectedMessage: "city not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := &HTTPServerAdapter{logger: mocks.NewPermissiveLogger(t)}
			router := gin.New()
			router.GET("/test", func(c *gin.Context) {
				server.handleError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedMessage, decodeError(t, w))
		})
	}
}
