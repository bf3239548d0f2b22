package gateway

import (
	"github.com/nomadbikers/ridetrack/internal/pkg/constants"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	natspkg "github.com/nomadbikers/ridetrack/internal/pkg/nats"
	"github.com/nomadbikers/ridetrack/services/rides"
)

// RideGW publishes ride events to NATS
type RideGW struct {
	producer *natspkg.Producer
}

// NewRideGW creates a new ride gateway
func NewRideGW(client *natspkg.Client) rides.RideGW {
	return &RideGW{
		producer: natspkg.NewProducer(client),
	}
}

// PublishChange broadcasts a coarse invalidation event for the rides
// collection. The payload carries no rows; subscribers refetch.
func (g *RideGW) PublishChange(changeType models.ChangeType) error {
	return g.producer.Publish(constants.SubjectRidesChanged, models.ChangeEvent{
		Type:  changeType,
		Table: constants.CollectionRides,
	})
}

// PublishRideCompleted announces a persisted recording.
func (g *RideGW) PublishRideCompleted(event models.RideCompletedEvent) error {
	return g.producer.Publish(constants.SubjectRideCompleted, event)
}
