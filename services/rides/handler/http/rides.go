package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/nomadbikers/ridetrack/internal/pkg/logger"
	"github.com/nomadbikers/ridetrack/internal/pkg/syncstore"
	"github.com/nomadbikers/ridetrack/internal/utils"
	"github.com/nomadbikers/ridetrack/services/rides"
)

// RideHandler handles HTTP requests for ride operations
type RideHandler struct {
	rideUC rides.RideUC
}

// NewRideHandler creates a new ride handler
func NewRideHandler(rideUC rides.RideUC) *RideHandler {
	return &RideHandler{
		rideUC: rideUC,
	}
}

type createRideRequest struct {
	Date         string `json:"date"`
	MeetingPoint string `json:"meeting_point"`
	Destination  string `json:"destination"`
}

// CreateRide handles ride scheduling requests
func (h *RideHandler) CreateRide(c echo.Context) error {
	var req createRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	ride, err := h.rideUC.CreateRide(c.Request().Context(), req.Date, req.MeetingPoint, req.Destination)
	if err != nil {
		if errors.Is(err, syncstore.ErrOffline) {
			return utils.ServiceUnavailableResponse(c, "Cannot schedule rides while offline")
		}
		logger.Error("Failed to create ride", logger.Err(err))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride scheduled", ride)
}

// ListRides returns the ride collection in display order. With ?cached=true
// the last-known snapshot is served without touching the remote store.
func (h *RideHandler) ListRides(c echo.Context) error {
	ctx := c.Request().Context()

	if c.QueryParam("cached") == "true" {
		return utils.SuccessResponse(c, http.StatusOK, "Cached rides", h.rideUC.LoadCachedRides(ctx))
	}

	items, err := h.rideUC.ListRides(ctx)
	if err != nil {
		logger.Error("Failed to list rides", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list rides")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved", items)
}

// GetRide returns a single ride
func (h *RideHandler) GetRide(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	ride, err := h.rideUC.GetRide(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, rides.ErrRideNotFound) {
			return utils.NotFoundResponse(c, "Ride not found")
		}
		logger.Error("Failed to get ride", logger.String("ride_id", id.String()), logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve ride")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved", ride)
}

type favoriteRequest struct {
	Favorite bool `json:"favorite"`
}

// ToggleFavorite updates the favorite flag
func (h *RideHandler) ToggleFavorite(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var req favoriteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.rideUC.ToggleFavorite(c.Request().Context(), id, req.Favorite); err != nil {
		switch {
		case errors.Is(err, syncstore.ErrOffline):
			return utils.ServiceUnavailableResponse(c, "Cannot update favorites while offline")
		case errors.Is(err, rides.ErrRideNotFound):
			return utils.NotFoundResponse(c, "Ride not found")
		}
		logger.Error("Failed to toggle favorite", logger.String("ride_id", id.String()), logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update favorite")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Favorite updated", nil)
}

// DeleteRide removes a ride
func (h *RideHandler) DeleteRide(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	if err := h.rideUC.DeleteRide(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, syncstore.ErrOffline):
			return utils.ServiceUnavailableResponse(c, "Cannot delete rides while offline")
		case errors.Is(err, rides.ErrRideNotFound):
			return utils.NotFoundResponse(c, "Ride not found")
		}
		logger.Error("Failed to delete ride", logger.String("ride_id", id.String()), logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to delete ride")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride deleted", nil)
}

// TileManifest returns the geohash cells covering a ride's route
func (h *RideHandler) TileManifest(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	cells, err := h.rideUC.TileManifest(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, rides.ErrRideNotFound) {
			return utils.NotFoundResponse(c, "Ride not found")
		}
		logger.Error("Failed to build tile manifest", logger.String("ride_id", id.String()), logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to build tile manifest")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Tile manifest", cells)
}

// SyncPendingRides replays the offline completion queue on demand
func (h *RideHandler) SyncPendingRides(c echo.Context) error {
	n, err := h.rideUC.FlushPendingRides(c.Request().Context())
	if err != nil {
		logger.Warn("Manual pending-ride sync incomplete", logger.Err(err))
		return utils.ServiceUnavailableResponse(c, "Some rides could not be synced")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Pending rides synced", map[string]int{"synced": n})
}
