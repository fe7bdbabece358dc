package budget

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"travel/internal/session"
	"travel/pkg/logger"

	"github.com/gin-gonic/gin"
)

// PlanRecorder remembers saved plan IDs on the caller's profile.
type PlanRecorder interface {
	RecordPlan(ctx context.Context, sessionID string, planID int64) error
}

type BudgetHandler struct {
	service  *Service
	recorder PlanRecorder
	logger   logger.Logger
}

func NewBudgetHandler(s *Service, recorder PlanRecorder, log logger.Logger) *BudgetHandler {
	return &BudgetHandler{
		service:  s,
		recorder: recorder,
		logger:   log,
	}
}

func (h *BudgetHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/v1/destinations", h.ListDestinationsHandler)
	router.GET("/v1/destinations/:id", h.GetDestinationHandler)
	router.POST("/v1/budget/estimate", h.EstimateHandler)
	router.POST("/v1/budget/plans", h.CreatePlanHandler)
	router.GET("/v1/budget/plans/:id", h.GetPlanHandler)
	router.PATCH("/v1/budget/plans/:id", h.UpdatePlanHandler)
}

type DestinationList struct {
	Regions      []string      `json:"regions"`
	Destinations []Destination `json:"destinations"`
}

// ListDestinationsHandler godoc
// @Summary      List destinations
// @Tags         budget
// @Produce      json
// @Param        region query string false "Region, or All"
// @Param        q      query string false "Text search on name, country and description"
// @Success      200 {object} DestinationList
// @Router       /v1/destinations [get]
func (h *BudgetHandler) ListDestinationsHandler(c *gin.Context) {
	catalog := h.service.Catalog()
	c.JSON(http.StatusOK, DestinationList{
		Regions:      catalog.Regions(),
		Destinations: catalog.Filter(c.Query("region"), c.Query("q")),
	})
}

// GetDestinationHandler godoc
// @Summary      Get a destination
// @Tags         budget
// @Produce      json
// @Param        id path string true "Destination ID"
// @Success      200 {object} Destination
// @Failure      404 {object} map[string]string
// @Router       /v1/destinations/{id} [get]
func (h *BudgetHandler) GetDestinationHandler(c *gin.Context) {
	dest, ok := h.service.Catalog().Get(c.Param("id"))
	if !ok {
		sendError(c, ErrDestinationNotFound)
		return
	}
	c.JSON(http.StatusOK, dest)
}

// EstimateHandler godoc
// @Summary      Estimate a trip budget
// @Tags         budget
// @Accept       json
// @Produce      json
// @Param        request body PlanRequest true "Destination, days, level and custom items"
// @Success      200 {object} PlanView
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /v1/budget/estimate [post]
func (h *BudgetHandler) EstimateHandler(c *gin.Context) {
	req, ok := bindPlanRequest(c)
	if !ok {
		return
	}
	v, err := h.service.Build(req)
	if err != nil {
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// CreatePlanHandler godoc
// @Summary      Save a trip budget
// @Tags         budget
// @Accept       json
// @Produce      json
// @Param        request body PlanRequest true "Destination, days, level and custom items"
// @Success      201 {object} PlanView
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /v1/budget/plans [post]
func (h *BudgetHandler) CreatePlanHandler(c *gin.Context) {
	req, ok := bindPlanRequest(c)
	if !ok {
		return
	}
	v, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		sendError(c, err)
		return
	}

	if sessionID := c.GetHeader(session.Header); sessionID != "" && h.recorder != nil {
		if err := h.recorder.RecordPlan(c.Request.Context(), sessionID, v.ID); err != nil {
			h.logger.Warn("failed to record plan on profile", logger.Err(err), logger.Field{Key: "plan_id", Value: v.ID})
		}
	}
	c.JSON(http.StatusCreated, v)
}

// GetPlanHandler godoc
// @Summary      Get a saved trip budget
// @Tags         budget
// @Produce      json
// @Param        id path string true "Plan ID"
// @Success      200 {object} PlanView
// @Failure      404 {object} map[string]string
// @Router       /v1/budget/plans/{id} [get]
func (h *BudgetHandler) GetPlanHandler(c *gin.Context) {
	id, ok := planID(c)
	if !ok {
		return
	}
	v, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// UpdatePlanHandler godoc
// @Summary      Change a saved trip budget
// @Description  A new destination, trip_days or level re-prices the default items and keeps custom ones.
// @Tags         budget
// @Accept       json
// @Produce      json
// @Param        id      path string     true "Plan ID"
// @Param        request body PlanUpdate true "Changes"
// @Success      200 {object} PlanView
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /v1/budget/plans/{id} [patch]
func (h *BudgetHandler) UpdatePlanHandler(c *gin.Context) {
	id, ok := planID(c)
	if !ok {
		return
	}
	var u PlanUpdate
	if err := c.ShouldBindJSON(&u); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid request format: %v", err),
			"code":  "VALIDATION_ERROR",
		})
		return
	}
	if u.Level != nil && !u.Level.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "level must be budget, moderate or luxury",
			"code":  "VALIDATION_ERROR",
		})
		return
	}
	if u.TripDays != nil {
		days := ClampTripDays(*u.TripDays)
		u.TripDays = &days
	}

	v, err := h.service.Update(c.Request.Context(), id, u)
	if err != nil {
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func planID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "plan id must be numeric", "code": "VALIDATION_ERROR"})
		return 0, false
	}
	return id, true
}

func bindPlanRequest(c *gin.Context) (PlanRequest, bool) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid request format: %v", err),
			"code":  "VALIDATION_ERROR",
		})
		return req, false
	}
	if req.Level != "" && !req.Level.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "level must be budget, moderate or luxury",
			"code":  "VALIDATION_ERROR",
		})
		return req, false
	}
	req.TripDays = ClampTripDays(req.TripDays)
	return req, true
}

func sendError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrDestinationNotFound), errors.Is(err, ErrPlanNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": "NOT_FOUND"})
	case errors.Is(err, ErrInvalidItem), errors.Is(err, ErrDefaultItem):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"code":    "INTERNAL_FAILURE",
			"details": err.Error(),
		})
	}
}
