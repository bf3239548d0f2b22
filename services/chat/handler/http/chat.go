package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nomadbikers/ridetrack/internal/pkg/logger"
	"github.com/nomadbikers/ridetrack/internal/pkg/middleware"
	"github.com/nomadbikers/ridetrack/internal/pkg/syncstore"
	"github.com/nomadbikers/ridetrack/internal/utils"
	"github.com/nomadbikers/ridetrack/services/chat"
)

// ChatHandler handles HTTP requests for the group chat
type ChatHandler struct {
	chatUC chat.ChatUC
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatUC chat.ChatUC) *ChatHandler {
	return &ChatHandler{
		chatUC: chatUC,
	}
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

// SendMessage posts a text message authored by the authenticated member
func (h *ChatHandler) SendMessage(c echo.Context) error {
	authorID, _ := c.Get(middleware.ContextKeyUserID).(string)
	if authorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	message, err := h.chatUC.SendTextMessage(c.Request().Context(), authorID, req.Text)
	if err != nil {
		if errors.Is(err, syncstore.ErrOffline) {
			return utils.ServiceUnavailableResponse(c, "Cannot send messages while offline")
		}
		logger.Error("Failed to send chat message", logger.Err(err))
		return utils.BadRequestResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Message sent", message)
}

// SendImage posts an image message from a multipart upload
func (h *ChatHandler) SendImage(c echo.Context) error {
	authorID, _ := c.Get(middleware.ContextKeyUserID).(string)
	if authorID == "" {
		return utils.UnauthorizedResponse(c, "")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return utils.BadRequestResponse(c, "Missing image upload")
	}
	src, err := file.Open()
	if err != nil {
		return utils.BadRequestResponse(c, "Unreadable image upload")
	}
	defer src.Close()

	message, err := h.chatUC.SendImageMessage(c.Request().Context(), authorID, file.Filename, src)
	if err != nil {
		if errors.Is(err, syncstore.ErrOffline) {
			return utils.ServiceUnavailableResponse(c, "Cannot send messages while offline")
		}
		logger.Error("Failed to send chat image", logger.Err(err))
		return utils.BadRequestResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Image sent", message)
}

// ListMessages returns the chat history oldest first. With ?cached=true the
// last-known snapshot is served without touching the remote store.
func (h *ChatHandler) ListMessages(c echo.Context) error {
	ctx := c.Request().Context()

	if c.QueryParam("cached") == "true" {
		return utils.SuccessResponse(c, http.StatusOK, "Cached messages", h.chatUC.LoadCachedMessages(ctx))
	}

	items, err := h.chatUC.ListMessages(ctx)
	if err != nil {
		logger.Error("Failed to list chat messages", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list messages")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Messages retrieved", items)
}
