package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nomadbikers/ridetrack/internal/pkg/middleware"
	"github.com/nomadbikers/ridetrack/internal/pkg/prefs"
	"github.com/nomadbikers/ridetrack/internal/utils"
)

// PrefsHandler handles HTTP requests for device-local preferences
type PrefsHandler struct {
	store *prefs.Store
}

// NewPrefsHandler creates a new preferences handler
func NewPrefsHandler(store *prefs.Store) *PrefsHandler {
	return &PrefsHandler{
		store: store,
	}
}

type themeResponse struct {
	Theme prefs.Theme `json:"theme"`
}

type setThemeRequest struct {
	Theme prefs.Theme `json:"theme"`
}

// GetTheme returns the member's display theme, falling back to the default
// when nothing has been persisted
func (h *PrefsHandler) GetTheme(c echo.Context) error {
	memberID, _ := c.Get(middleware.ContextKeyUserID).(string)
	if memberID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	theme := h.store.Theme(c.Request().Context(), memberID)
	return utils.SuccessResponse(c, http.StatusOK, "Theme retrieved", themeResponse{Theme: theme})
}

// SetTheme persists the member's display theme
func (h *PrefsHandler) SetTheme(c echo.Context) error {
	memberID, _ := c.Get(middleware.ContextKeyUserID).(string)
	if memberID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req setThemeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.store.SetTheme(c.Request().Context(), memberID, req.Theme); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Theme updated", themeResponse{Theme: req.Theme})
}
