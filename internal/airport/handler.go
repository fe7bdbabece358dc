package airport

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AirportHandler struct {
	service *Service
}

func NewAirportHandler(s *Service) *AirportHandler {
	return &AirportHandler{service: s}
}

func (h *AirportHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/v1/airports/suggestions", h.SuggestionsHandler)
	router.GET("/v1/airports/nearby", h.NearbyHandler)
}

// SuggestionsHandler godoc
// @Summary      Airport and city suggestions
// @Description  Fewer than two characters, or an upstream failure, returns an empty list.
// @Tags         airports
// @Produce      json
// @Param        keyword query string true "Part of an airport or city name, or an IATA code"
// @Success      200 {array} Airport
// @Router       /v1/airports/suggestions [get]
func (h *AirportHandler) SuggestionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Suggest(c.Request.Context(), c.Query("keyword")))
}

// NearbyHandler godoc
// @Summary      Airports near a point
// @Tags         airports
// @Produce      json
// @Param        latitude  query number true "Latitude"
// @Param        longitude query number true "Longitude"
// @Success      200 {array} NearbyAirport
// @Failure      400 {object} map[string]string
// @Router       /v1/airports/nearby [get]
func (h *AirportHandler) NearbyHandler(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("latitude"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("longitude"), 64)
	if errLat != nil || errLon != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude are required", "code": "VALIDATION_ERROR"})
		return
	}

	airports, err := h.service.Nearby(c.Request.Context(), lat, lon)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
		return
	}
	c.JSON(http.StatusOK, airports)
}
