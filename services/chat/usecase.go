package chat

import (
	"context"
	"io"

	"github.com/nomadbikers/ridetrack/internal/pkg/models"
)

// go:generate mockgen -destination=mocks/mock_chat.go -package=mocks github.com/nomadbikers/ridetrack/services/chat ChatUC,ChatRepo,ChatGW

// ChatUC defines the interface for group chat business logic
type ChatUC interface {
	// Sending: gated while offline, never queued
	SendTextMessage(ctx context.Context, authorID, text string) (models.ChatMessage, error)
	SendImageMessage(ctx context.Context, authorID, filename string, image io.Reader) (models.ChatMessage, error)

	// Listing: cached snapshot without network, or refreshed view, oldest first
	LoadCachedMessages(ctx context.Context) []models.ChatMessage
	ListMessages(ctx context.Context) ([]models.ChatMessage, error)
	SubscribeToChanges(onChange func([]models.ChatMessage)) (func(), error)
}
