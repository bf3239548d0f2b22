package gateway

import (
	"github.com/nomadbikers/ridetrack/internal/pkg/constants"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	natspkg "github.com/nomadbikers/ridetrack/internal/pkg/nats"
	"github.com/nomadbikers/ridetrack/services/profiles"
)

// ProfileGW publishes profile events to NATS
type ProfileGW struct {
	producer *natspkg.Producer
}

// NewProfileGW creates a new profile gateway
func NewProfileGW(client *natspkg.Client) profiles.ProfileGW {
	return &ProfileGW{
		producer: natspkg.NewProducer(client),
	}
}

// PublishChange broadcasts a coarse invalidation event for the profiles
// collection.
func (g *ProfileGW) PublishChange(changeType models.ChangeType) error {
	return g.producer.Publish(constants.SubjectProfilesChanged, models.ChangeEvent{
		Type:  changeType,
		Table: constants.CollectionProfiles,
	})
}
