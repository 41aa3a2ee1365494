package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"breezy.app/internal/ports"
	"breezy.app/pkg/errors"
)

// CityRequest is the body of POST /api/cities and PUT /api/focus
type CityRequest struct {
	City string `json:"city" form:"city" binding:"required,cityname"`
}

// CitiesResponse lists tracked cities in display order
type CitiesResponse struct {
	Cities []string `json:"cities"`
}

// FocusResponse reports the focused city
type FocusResponse struct {
	Focused string `json:"focused"`
}

// listCities handles GET /api/cities requests
func (s *HTTPServerAdapter) listCities(c *gin.Context) {
	snapshot := s.dashboardUseCase.Snapshot()
	c.JSON(http.StatusOK, CitiesResponse{Cities: snapshot.Cities})
}

// addCity handles POST /api/cities requests
func (s *HTTPServerAdapter) addCity(c *gin.Context) {
	var req CityRequest
	if err := c.ShouldBind(&req); err != nil {
		s.handleError(c, errors.NewValidationError("city is required"))
		return
	}

	result, err := s.dashboardUseCase.AddCity(c.Request.Context(), req.City)
	if err != nil {
		s.handleError(c, err)
		return
	}

	if result.Error != "" {
		s.logger.Warn("City added without weather", ports.F("city", result.City), ports.F("error", result.Error))
	}
	c.JSON(http.StatusCreated, result)
}

// removeCity handles DELETE /api/cities/:city requests
func (s *HTTPServerAdapter) removeCity(c *gin.Context) {
	if err := s.dashboardUseCase.RemoveCity(c.Request.Context(), c.Param("city")); err != nil {
		s.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// setFocus handles PUT /api/focus requests
func (s *HTTPServerAdapter) setFocus(c *gin.Context) {
	var req CityRequest
	if err := c.ShouldBind(&req); err != nil {
		s.handleError(c, errors.NewValidationError("city is required"))
		return
	}

	focused, err := s.dashboardUseCase.Focus(req.City)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, FocusResponse{Focused: focused})
}
