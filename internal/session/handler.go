package session

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Header carries the session ID on every session-scoped request. Flight
// search and budget plan handlers read it too.
const Header = "X-Session-ID"

type SessionHandler struct {
	manager *Manager
}

func NewSessionHandler(m *Manager) *SessionHandler {
	return &SessionHandler{manager: m}
}

func (h *SessionHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/v1/session", h.LoginHandler)
	router.DELETE("/v1/session", h.LogoutHandler)
	router.GET("/v1/session/profile", h.GetProfileHandler)
	router.PATCH("/v1/session/profile", h.UpdateProfileHandler)
	router.POST("/v1/session/saved-searches", h.SaveSearchHandler)
	router.DELETE("/v1/session/saved-searches/:id", h.DeleteSavedSearchHandler)
	router.POST("/v1/session/favorites/:destinationId", h.ToggleFavoriteHandler)
	router.POST("/v1/session/comparison", h.AddComparisonHandler)
	router.DELETE("/v1/session/comparison/:flightId", h.RemoveComparisonHandler)
}

type LoginRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type UpdateProfileRequest struct {
	Name string `json:"name"`
}

type ComparisonRequest struct {
	FlightID string `json:"flight_id"`
}

// LoginHandler godoc
// @Summary      Start a session
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Email and display name"
// @Success      201 {object} Profile
// @Failure      400 {object} map[string]string
// @Router       /v1/session [post]
func (h *SessionHandler) LoginHandler(c *gin.Context) {
	var req LoginRequest
	if !bind(c, &req) {
		return
	}
	p, err := h.manager.Login(c.Request.Context(), req.Email, req.Name)
	if err != nil {
		sendError(c, err)
		return
	}
	c.Header(Header, p.ID)
	c.JSON(http.StatusCreated, p)
}

// LogoutHandler godoc
// @Summary      End the current session
// @Tags         session
// @Param        X-Session-ID header string true "Session ID"
// @Success      204
// @Router       /v1/session [delete]
func (h *SessionHandler) LogoutHandler(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	if err := h.manager.Logout(c.Request.Context(), id); err != nil {
		sendError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetProfileHandler godoc
// @Summary      Current profile
// @Tags         session
// @Produce      json
// @Param        X-Session-ID header string true "Session ID"
// @Success      200 {object} Profile
// @Failure      401 {object} map[string]string
// @Router       /v1/session/profile [get]
func (h *SessionHandler) GetProfileHandler(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	p, err := h.manager.Profile(c.Request.Context(), id)
	if err != nil {
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProfileHandler godoc
// @Summary      Rename the current user
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string true "Session ID"
// @Param        request body UpdateProfileRequest true "New display name"
// @Success      200 {object} Profile
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Router       /v1/session/profile [patch]
func (h *SessionHandler) UpdateProfileHandler(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if !bind(c, &req) {
		return
	}
	p, err := h.manager.UpdateProfile(c.Request.Context(), id, func(p *Profile) error {
		name := strings.TrimSpace(req.Name)
		if name == "" {
			return fmt.Errorf("%w: name is required", ErrInvalidProfile)
		}
		p.Name = name
		return nil
	})
	respond(c, p, err)
}

// SaveSearchHandler godoc
// @Summary      Save a search on the profile
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string true "Session ID"
// @Param        request body SavedSearch true "Search to keep"
// @Success      200 {object} Profile
// @Failure      401 {object} map[string]string
// @Router       /v1/session/saved-searches [post]
func (h *SessionHandler) SaveSearchHandler(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req SavedSearch
	if !bind(c, &req) {
		return
	}
	p, err := h.manager.SaveSearch(c.Request.Context(), id, req)
	respond(c, p, err)
}

// DeleteSavedSearchHandler godoc
// @Summary      Forget a saved search
// @Tags         session
// @Produce      json
// @Param        X-Session-ID header string true "Session ID"
// @Param        id path string true "Saved search ID"
// @Success      200 {object} Profile
// @Failure      401 {object} map[string]string
// @Router       /v1/session/saved-searches/{id} [delete]
func (h *SessionHandler) DeleteSavedSearchHandler(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	p, err := h.manager.UpdateProfile(c.Request.Context(), id, func(p *Profile) error {
		p.RemoveSavedSearch(c.Param("id"))
		return nil
	})
	respond(c, p, err)
}

// ToggleFavoriteHandler godoc
// @Summary      Toggle a favorite destination
// @Tags         session
// @Produce      json
// @Param        X-Session-ID header string true "Session ID"
// @Param        destinationId path string true "Destination ID"
// @Success      200 {object} Profile
// @Failure      401 {object} map[string]string
// @Router       /v1/session/favorites/{destinationId} [post]
func (h *SessionHandler) ToggleFavoriteHandler(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	p, err := h.manager.UpdateProfile(c.Request.Context(), id, func(p *Profile) error {
		p.ToggleFavorite(c.Param("destinationId"))
		return nil
	})
	respond(c, p, err)
}

// AddComparisonHandler godoc
// @Summary      Add a flight to the comparison
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string true "Session ID"
// @Param        request body ComparisonRequest true "Flight to compare"
// @Success      200 {object} Profile
// @Failure      401 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Router       /v1/session/comparison [post]
func (h *SessionHandler) AddComparisonHandler(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	var req ComparisonRequest
	if !bind(c, &req) {
		return
	}
	if req.FlightID == "" {
		sendError(c, fmt.Errorf("%w: flight_id is required", ErrInvalidProfile))
		return
	}
	p, err := h.manager.UpdateProfile(c.Request.Context(), id, func(p *Profile) error {
		return p.AddToComparison(req.FlightID)
	})
	respond(c, p, err)
}

// RemoveComparisonHandler godoc
// @Summary      Remove a flight from the comparison
// @Tags         session
// @Produce      json
// @Param        X-Session-ID header string true "Session ID"
// @Param        flightId path string true "Flight ID"
// @Success      200 {object} Profile
// @Failure      401 {object} map[string]string
// @Router       /v1/session/comparison/{flightId} [delete]
func (h *SessionHandler) RemoveComparisonHandler(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	p, err := h.manager.UpdateProfile(c.Request.Context(), id, func(p *Profile) error {
		p.RemoveFromComparison(c.Param("flightId"))
		return nil
	})
	respond(c, p, err)
}

func sessionID(c *gin.Context) (string, bool) {
	id := c.GetHeader(Header)
	if id == "" {
		sendError(c, ErrSessionNotFound)
		return "", false
	}
	return id, true
}

func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid request format: %v", err),
			"code":  "VALIDATION_ERROR",
		})
		return false
	}
	return true
}

func respond(c *gin.Context, p *Profile, err error) {
	if err != nil {
		sendError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func sendError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "code": "SESSION_NOT_FOUND"})
	case errors.Is(err, ErrComparisonFull), errors.Is(err, ErrAlreadyComparing):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "COMPARISON_CONFLICT"})
	case errors.Is(err, ErrInvalidProfile):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "VALIDATION_ERROR"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"code":    "INTERNAL_FAILURE",
			"details": err.Error(),
		})
	}
}
