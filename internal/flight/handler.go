package flight

import (
	"errors"
	"fmt"
	"net/http"

	"travel/internal/session"

	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service *Service
}

func NewFlightHandler(s *Service) *FlightHandler {
	return &FlightHandler{
		service: s,
	}
}

func (h *FlightHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/v1/flights/search", h.SearchFlightsHandler)
	router.POST("/v1/flights/results", h.ResultsHandler)
	router.DELETE("/v1/flights/cache", h.InvalidateCacheHandler)
}

// SearchFlightsHandler godoc
// @Summary      Search flights
// @Description  Fetch the normalized result set for a route and date
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body SearchRequest true "Search Criteria"
// @Success      200 {object} SearchResponse
// @Failure      400 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Router       /v1/flights/search [post]
func (h *FlightHandler) SearchFlightsHandler(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid request format: %v", err),
			"code":  ErrorCodeValidation,
		})
		return
	}
	req.SessionID = c.GetHeader(session.Header)

	response, err := h.service.SearchFlights(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ResultsHandler godoc
// @Summary      Filtered and ranked flight results
// @Description  Apply structural filters, quick filters, badges and sort order to a search
// @Tags         flights
// @Accept       json
// @Produce      json
// @Param        request body ResultsRequest true "Search, filters and sort"
// @Success      200 {object} ResultsResponse
// @Failure      400 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Router       /v1/flights/results [post]
func (h *FlightHandler) ResultsHandler(c *gin.Context) {
	var req ResultsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid request format: %v", err),
			"code":  ErrorCodeValidation,
		})
		return
	}
	req.SessionID = c.GetHeader(session.Header)

	response, err := h.service.Results(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// InvalidateCacheHandler godoc
// @Summary      Drop cached results for a search
// @Tags         flights
// @Accept       json
// @Param        request body SearchRequest true "Search Criteria"
// @Success      204
// @Router       /v1/flights/cache [delete]
func (h *FlightHandler) InvalidateCacheHandler(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid request format: %v", err),
			"code":  ErrorCodeValidation,
		})
		return
	}

	if err := h.service.InvalidateCache(c.Request.Context(), req); err != nil {
		sendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func sendError(c *gin.Context, err error) {
	var appErr *AppError

	if errors.As(err, &appErr) {
		c.JSON(appErr.Status, gin.H{
			"error": appErr.Message,
			"code":  appErr.Code,
		})
		return
	}

	// Default to 500 for unknown errors
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal Server Error",
		"code":    ErrorCodeInternalFailure,
		"details": err.Error(),
	})
}
