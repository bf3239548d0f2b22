package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/nomadbikers/ridetrack/internal/pkg/logger"
	"github.com/nomadbikers/ridetrack/internal/pkg/middleware"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	"github.com/nomadbikers/ridetrack/services/rides"
	httpHandler "github.com/nomadbikers/ridetrack/services/rides/handler/http"
	wsHandler "github.com/nomadbikers/ridetrack/services/rides/handler/websocket"
	"github.com/nomadbikers/ridetrack/services/rides/sampler"
	"github.com/nomadbikers/ridetrack/services/rides/usecase"
)

// Handler combines all protocol handlers for the rides service
type Handler struct {
	ridesHTTP   *httpHandler.RideHandler
	sessionHTTP *httpHandler.SessionHandler
	feedWS      *wsHandler.FeedHandler
	rideUC      rides.RideUC
	cfg         *models.Config

	stopChanges func()
}

// NewHandler creates a new combined handler
func NewHandler(
	rideUC rides.RideUC,
	session *usecase.Session,
	feed *sampler.Feed,
	cfg *models.Config,
) *Handler {
	return &Handler{
		ridesHTTP:   httpHandler.NewRideHandler(rideUC),
		sessionHTTP: httpHandler.NewSessionHandler(session, rideUC),
		feedWS:      wsHandler.NewFeedHandler(feed, session),
		rideUC:      rideUC,
		cfg:         cfg,
	}
}

// RegisterRoutes registers all HTTP and websocket routes
func (h *Handler) RegisterRoutes(e *echo.Echo, mw *middleware.Middleware) {
	protected := e.Group("", mw.SessionAuth())

	rideGroup := protected.Group("/rides")
	rideGroup.POST("", h.ridesHTTP.CreateRide)
	rideGroup.GET("", h.ridesHTTP.ListRides)
	rideGroup.GET("/:id", h.ridesHTTP.GetRide)
	rideGroup.PUT("/:id/favorite", h.ridesHTTP.ToggleFavorite)
	rideGroup.DELETE("/:id", h.ridesHTTP.DeleteRide)
	rideGroup.GET("/:id/tiles", h.ridesHTTP.TileManifest)
	rideGroup.POST("/sync", h.ridesHTTP.SyncPendingRides)

	sessionGroup := protected.Group("/session")
	sessionGroup.POST("/select", h.sessionHTTP.SelectRide)
	sessionGroup.POST("/start", h.sessionHTTP.StartRecording)
	sessionGroup.POST("/stop", h.sessionHTTP.StopRecording)
	sessionGroup.GET("/metrics", h.sessionHTTP.SessionMetrics)

	wsGroup := e.Group("/ws", mw.SessionAuth())
	wsGroup.GET("/tracking", h.feedWS.HandleWebSocket)
}

// InitNATSConsumers subscribes to the rides change feed so the cached
// snapshot stays reconciled while the service runs.
func (h *Handler) InitNATSConsumers() error {
	stop, err := h.rideUC.SubscribeToChanges(func(items []models.Ride) {
		logger.Debug("Rides snapshot refreshed", logger.Int("count", len(items)))
	})
	if err != nil {
		return err
	}
	h.stopChanges = stop
	return nil
}

// Stop cancels the change subscription.
func (h *Handler) Stop() {
	if h.stopChanges != nil {
		h.stopChanges()
	}
}
