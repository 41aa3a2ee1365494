package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"breezy.app/pkg/errors"
)

// PreviewRequest holds the query of GET /api/preview
type PreviewRequest struct {
	City  string `form:"city" binding:"required,cityname"`
	Units string `form:"units" binding:"units"`
}

// getDashboard handles GET /api/weather requests
func (s *HTTPServerAdapter) getDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, s.dashboardUseCase.Snapshot())
}

// getCityWeather handles GET /api/weather/:city requests
func (s *HTTPServerAdapter) getCityWeather(c *gin.Context) {
	view, err := s.dashboardUseCase.View(c.Param("city"))
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// refreshAll handles POST /api/weather/refresh requests
func (s *HTTPServerAdapter) refreshAll(c *gin.Context) {
	c.JSON(http.StatusOK, s.dashboardUseCase.RefreshAll(c.Request.Context()))
}

// refreshCity handles POST /api/weather/:city/refresh requests
func (s *HTTPServerAdapter) refreshCity(c *gin.Context) {
	view, err := s.dashboardUseCase.RefreshCity(c.Request.Context(), c.Param("city"))
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// previewWeather handles GET /api/preview requests
func (s *HTTPServerAdapter) previewWeather(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		s.handleError(c, errors.NewValidationError("city parameter is required and units must be metric, imperial or standard"))
		return
	}

	view, err := s.dashboardUseCase.Preview(c.Request.Context(), req.City, req.Units)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
