package chat

import (
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
)

// ChatGW defines the interface for publishing chat events to the message bus
type ChatGW interface {
	// PublishChange signals that the chat collection changed on the remote
	// store; subscribers refetch the whole collection.
	PublishChange(changeType models.ChangeType) error
}
