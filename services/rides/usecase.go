package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
)

// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/nomadbikers/ridetrack/services/rides RideUC

// RideUC defines the interface for ride business logic
type RideUC interface {
	// Schedule operations
	CreateRide(ctx context.Context, date, meetingPoint, destination string) (models.Ride, error)
	GetRide(ctx context.Context, id uuid.UUID) (models.Ride, error)
	ToggleFavorite(ctx context.Context, id uuid.UUID, favorite bool) error
	DeleteRide(ctx context.Context, id uuid.UUID) error

	// Listing: cached snapshot without network, or refreshed view
	LoadCachedRides(ctx context.Context) []models.Ride
	ListRides(ctx context.Context) ([]models.Ride, error)
	SubscribeToChanges(onChange func([]models.Ride)) (func(), error)

	// Recording persistence
	CompleteRide(ctx context.Context, ride models.Ride) error
	FlushPendingRides(ctx context.Context) (int, error)

	// Map-tile precache manifest for offline rendering
	TileManifest(ctx context.Context, id uuid.UUID) ([]string, error)
}

// RideRecorder persists a completed recording. The session depends on this
// narrow surface rather than the full use case.
type RideRecorder interface {
	CompleteRide(ctx context.Context, ride models.Ride) error
}
