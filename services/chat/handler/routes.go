package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/nomadbikers/ridetrack/internal/pkg/logger"
	"github.com/nomadbikers/ridetrack/internal/pkg/middleware"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	"github.com/nomadbikers/ridetrack/services/chat"
	httpHandler "github.com/nomadbikers/ridetrack/services/chat/handler/http"
)

// Handler combines all handlers for the chat service
type Handler struct {
	chatHTTP *httpHandler.ChatHandler
	chatUC   chat.ChatUC
	cfg      *models.Config

	stopChanges func()
}

// NewHandler creates a new combined handler
func NewHandler(chatUC chat.ChatUC, cfg *models.Config) *Handler {
	return &Handler{
		chatHTTP: httpHandler.NewChatHandler(chatUC),
		chatUC:   chatUC,
		cfg:      cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, mw *middleware.Middleware) {
	chatGroup := e.Group("/chat", mw.SessionAuth())
	chatGroup.POST("/messages", h.chatHTTP.SendMessage)
	chatGroup.POST("/messages/image", h.chatHTTP.SendImage)
	chatGroup.GET("/messages", h.chatHTTP.ListMessages)
}

// InitNATSConsumers subscribes to the chat change feed so the cached snapshot
// stays reconciled while the service runs.
func (h *Handler) InitNATSConsumers() error {
	stop, err := h.chatUC.SubscribeToChanges(func(items []models.ChatMessage) {
		logger.Debug("Chat snapshot refreshed", logger.Int("count", len(items)))
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
