package rides

import (
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
)

// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/nomadbikers/ridetrack/services/rides RideGW

// RideGW defines the interface for publishing ride events to the message bus
type RideGW interface {
	// PublishChange signals that the rides collection changed on the remote
	// store. Subscribers invalidate and refetch; the event carries no rows.
	PublishChange(changeType models.ChangeType) error

	// PublishRideCompleted announces a finished recording so downstream
	// consumers (leaderboard, notifications) can react.
	PublishRideCompleted(event models.RideCompletedEvent) error
}
