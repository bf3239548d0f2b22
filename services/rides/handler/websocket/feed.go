package websocket

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nomadbikers/ridetrack/internal/pkg/constants"
	"github.com/nomadbikers/ridetrack/internal/pkg/logger"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	"github.com/nomadbikers/ridetrack/services/rides/sampler"
	"github.com/nomadbikers/ridetrack/services/rides/usecase"
	"golang.org/x/net/websocket"
)

// FeedHandler bridges the device's websocket connection and the recording
// pipeline: inbound position fixes feed the sampler, outbound frames carry
// live metrics back to the device.
type FeedHandler struct {
	feed    *sampler.Feed
	session *usecase.Session
}

// NewFeedHandler creates a new tracking feed handler
func NewFeedHandler(feed *sampler.Feed, session *usecase.Session) *FeedHandler {
	return &FeedHandler{
		feed:    feed,
		session: session,
	}
}

// HandleWebSocket serves the tracking feed over Echo's native websocket
// support.
func (h *FeedHandler) HandleWebSocket(c echo.Context) error {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing user credentials in token")
	}

	wsServer := &websocket.Server{
		Handler: func(ws *websocket.Conn) {
			defer ws.Close()

			logger.Info("Tracking feed connected", logger.String("user_id", userID))

			unsubscribe := h.streamMetrics(ws)
			defer unsubscribe()

			for {
				var msg models.WSMessage
				if err := websocket.JSON.Receive(ws, &msg); err != nil {
					if err == io.EOF {
						logger.Info("Tracking feed disconnected", logger.String("user_id", userID))
						break
					}
					logger.Error("Error receiving feed message",
						logger.String("user_id", userID),
						logger.Err(err))
					break
				}

				if err := h.handleMessage(ws, &msg); err != nil {
					logger.Error("Error handling feed message",
						logger.String("user_id", userID),
						logger.String("event", msg.Event),
						logger.Err(err))
				}
			}
		},
		Handshake: func(config *websocket.Config, req *http.Request) error {
			config.Origin = config.Location
			return nil
		},
	}

	wsServer.ServeHTTP(c.Response(), c.Request())
	return nil
}

func (h *FeedHandler) handleMessage(ws *websocket.Conn, msg *models.WSMessage) error {
	switch msg.Event {
	case constants.EventPositionFix:
		return h.handlePositionFix(msg.Data)
	case constants.EventPositionError:
		return h.handlePositionError(msg.Data)
	default:
		return h.sendError(ws, constants.ErrorInvalidFormat, "Unknown event type")
	}
}

func (h *FeedHandler) handlePositionFix(data json.RawMessage) error {
	var fix models.PositionFixPayload
	if err := json.Unmarshal(data, &fix); err != nil {
		return err
	}

	captured := time.Now()
	if fix.Timestamp > 0 {
		captured = time.UnixMilli(fix.Timestamp)
	}
	h.feed.Push(sampler.Position{
		Point:      models.RoutePoint{Lat: fix.Lat, Lng: fix.Lng, Timestamp: fix.Timestamp},
		Accuracy:   fix.Accuracy,
		CapturedAt: captured,
	})
	return nil
}

func (h *FeedHandler) handlePositionError(data json.RawMessage) error {
	var fault models.PositionErrorPayload
	if err := json.Unmarshal(data, &fault); err != nil {
		return err
	}

	code := sampler.ErrorCode(fault.Code)
	switch code {
	case sampler.ErrCodePermissionDenied, sampler.ErrCodePositionUnavailable, sampler.ErrCodeTimeout:
	default:
		code = sampler.ErrCodeUnknown
	}
	h.feed.Fail(code, fault.Message)
	return nil
}

// streamMetrics forwards live session metrics to the device for the lifetime
// of the connection.
func (h *FeedHandler) streamMetrics(ws *websocket.Conn) func() {
	h.session.OnMetrics(func(m usecase.Metrics) {
		msg, err := models.NewWSMessage(constants.EventMetricsUpdate, m)
		if err != nil {
			return
		}
		if err := websocket.JSON.Send(ws, msg); err != nil {
			logger.Debug("Failed to push metrics frame", logger.Err(err))
		}
	})
	return func() {
		h.session.OnMetrics(nil)
	}
}

func (h *FeedHandler) sendError(ws *websocket.Conn, code, message string) error {
	msg, err := models.NewWSMessage(constants.EventError, map[string]string{
		"code":    code,
		"message": message,
	})
	if err != nil {
		return err
	}
	return websocket.JSON.Send(ws, msg)
}
