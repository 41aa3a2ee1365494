package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"breezy.app/internal/core/session"
	"breezy.app/pkg/errors"
)

// LocationRequest is one permission report from the device
type LocationRequest struct {
	Status string `json:"status" binding:"required"`
	City   string `json:"city"`
}

// getSession handles GET /api/session requests
func (s *HTTPServerAdapter) getSession(c *gin.Context) {
	c.JSON(http.StatusOK, s.sessionUseCase.Snapshot())
}

// reportLocation handles POST /api/session/location requests
func (s *HTTPServerAdapter) reportLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	snapshot, err := s.sessionUseCase.HandleLocation(c.Request.Context(), session.LocationSignal{
		Status: req.Status,
		City:   req.City,
	})
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
