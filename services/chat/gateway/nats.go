package gateway

import (
	"github.com/nomadbikers/ridetrack/internal/pkg/constants"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	natspkg "github.com/nomadbikers/ridetrack/internal/pkg/nats"
	"github.com/nomadbikers/ridetrack/services/chat"
)

// ChatGW publishes chat events to NATS
type ChatGW struct {
	producer *natspkg.Producer
}

// NewChatGW creates a new chat gateway
func NewChatGW(client *natspkg.Client) chat.ChatGW {
	return &ChatGW{
		producer: natspkg.NewProducer(client),
	}
}

// PublishChange broadcasts a coarse invalidation event for the chat
// collection.
func (g *ChatGW) PublishChange(changeType models.ChangeType) error {
	return g.producer.Publish(constants.SubjectChatChanged, models.ChangeEvent{
		Type:  changeType,
		Table: constants.CollectionChat,
	})
}
