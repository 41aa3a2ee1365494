package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"breezy.app/internal/ports"
	errorspkg "breezy.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	appErr, ok := errorspkg.AsAppError(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	var statusCode int
	var message string

	switch appErr.Type {
	case errorspkg.ErrorTypeValidation:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case errorspkg.ErrorTypeNotFound:
		statusCode = http.StatusNotFound
		message = appErr.Message
	case errorspkg.ErrorTypeAlreadyExists:
		statusCode = http.StatusConflict
		message = appErr.Message
	case errorspkg.ErrorTypeRemote:
		// An unknown city comes back from the weather API as a 404
		if appErr.StatusCode == http.StatusNotFound {
			statusCode = http.StatusNotFound
		} else {
			statusCode = http.StatusBadGateway
		}
		message = appErr.Message
	case errorspkg.ErrorTypeTransport, errorspkg.ErrorTypeDecode:
		statusCode = http.StatusBadGateway
		message = "Weather service unavailable"
	case errorspkg.ErrorTypeDatabase, errorspkg.ErrorTypeCache, errorspkg.ErrorTypeConfiguration:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	if statusCode >= http.StatusInternalServerError && s.logger != nil {
		s.logger.Error("Request failed", ports.F("path", c.Request.URL.Path), ports.F("error", err))
	}
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// getMetrics handles GET /api/metrics requests
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	metrics, err := s.metricsCollector.GetMetrics(c.Request.Context())
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// getHealth handles GET /api/health requests
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())

	status := ports.HealthStatusHealthy
	code := http.StatusOK
	for _, result := range results {
		if result.Status == ports.HealthStatusUnhealthy {
			status = ports.HealthStatusUnhealthy
			code = http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(code, gin.H{"status": status, "components": results})
}
