package chat

import (
	"context"

	"github.com/nomadbikers/ridetrack/internal/pkg/models"
)

// ChatRepo defines the interface for chat message data access
type ChatRepo interface {
	CreateMessage(ctx context.Context, message models.ChatMessage) error

	// ListMessages returns all messages oldest first, with the sender profile
	// denormalized at read time.
	ListMessages(ctx context.Context) ([]models.ChatMessage, error)
}
