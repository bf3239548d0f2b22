package handler

import (
	"encoding/json"

	"github.com/labstack/echo/v4"
	"github.com/nomadbikers/ridetrack/internal/pkg/constants"
	"github.com/nomadbikers/ridetrack/internal/pkg/logger"
	"github.com/nomadbikers/ridetrack/internal/pkg/middleware"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	natspkg "github.com/nomadbikers/ridetrack/internal/pkg/nats"
	"github.com/nomadbikers/ridetrack/internal/pkg/prefs"
	"github.com/nomadbikers/ridetrack/services/profiles"
	httpHandler "github.com/nomadbikers/ridetrack/services/profiles/handler/http"
)

// Handler combines all handlers for the profiles service
type Handler struct {
	profilesHTTP *httpHandler.ProfileHandler
	prefsHTTP    *httpHandler.PrefsHandler
	profileUC    profiles.ProfileUC
	natsClient   *natspkg.Client
	cfg          *models.Config

	stopChanges  func()
	rideConsumer *natspkg.Consumer
}

// NewHandler creates a new combined handler
func NewHandler(profileUC profiles.ProfileUC, prefStore *prefs.Store, natsClient *natspkg.Client, cfg *models.Config) *Handler {
	return &Handler{
		profilesHTTP: httpHandler.NewProfileHandler(profileUC, cfg),
		prefsHTTP:    httpHandler.NewPrefsHandler(prefStore),
		profileUC:    profileUC,
		natsClient:   natsClient,
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes. Registration is the entry point
// that issues the session token, so it stays outside the auth group.
func (h *Handler) RegisterRoutes(e *echo.Echo, mw *middleware.Middleware) {
	e.POST("/profiles/register", h.profilesHTTP.Register)

	profileGroup := e.Group("/profiles", mw.SessionAuth())
	profileGroup.GET("", h.profilesHTTP.ListProfiles)
	profileGroup.GET("/:id", h.profilesHTTP.GetProfile)
	profileGroup.POST("/avatar", h.profilesHTTP.UploadAvatar)

	e.GET("/leaderboard", h.profilesHTTP.Leaderboard, mw.SessionAuth())

	prefsGroup := e.Group("/preferences", mw.SessionAuth())
	prefsGroup.GET("/theme", h.prefsHTTP.GetTheme)
	prefsGroup.PUT("/theme", h.prefsHTTP.SetTheme)
}

// InitNATSConsumers subscribes to the profiles change feed and to ride
// completions, which move members on the leaderboard.
func (h *Handler) InitNATSConsumers() error {
	stop, err := h.profileUC.SubscribeToChanges(func(items []models.Profile) {
		logger.Debug("Profiles snapshot refreshed", logger.Int("count", len(items)))
	})
	if err != nil {
		return err
	}
	h.stopChanges = stop

	if h.natsClient == nil {
		return nil
	}
	consumer, err := natspkg.NewConsumer(h.natsClient, constants.SubjectRideCompleted, "", h.handleRideCompleted)
	if err != nil {
		return err
	}
	h.rideConsumer = consumer
	return nil
}

func (h *Handler) handleRideCompleted(message []byte) error {
	var event models.RideCompletedEvent
	if err := json.Unmarshal(message, &event); err != nil {
		return err
	}
	logger.Info("Ride completed, leaderboard standings changed",
		logger.String("ride_id", event.RideID),
		logger.String("recorder_id", event.RecorderID),
		logger.Float64("distance_km", event.Distance))
	return nil
}

// Stop cancels the change subscription and the ride completion consumer.
func (h *Handler) Stop() {
	if h.stopChanges != nil {
		h.stopChanges()
	}
	if h.rideConsumer != nil {
		h.rideConsumer.Stop()
	}
}
