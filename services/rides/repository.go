package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
)

// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/nomadbikers/ridetrack/services/rides RideRepo,RideCache

// RideRepo defines the interface for ride data access against the remote store
type RideRepo interface {
	CreateRide(ctx context.Context, ride models.Ride) error
	GetRideByID(ctx context.Context, id uuid.UUID) (models.Ride, error)
	ListRides(ctx context.Context) ([]models.Ride, error)
	UpdateFavorite(ctx context.Context, id uuid.UUID, favorite bool) error
	DeleteRide(ctx context.Context, id uuid.UUID) error

	// CompleteRide persists the finished recording (route, timestamps, final
	// metrics, recorder). It is idempotent so the offline flush can replay it.
	CompleteRide(ctx context.Context, ride models.Ride) error
}

// RideCache defines the device-local storage surface beyond the snapshot the
// sync coordinator owns: the pending-write queue for rides completed while
// offline, and the per-ride tile precache manifest.
type RideCache interface {
	EnqueuePendingRide(ctx context.Context, ride models.Ride) error
	PendingRides(ctx context.Context) ([]models.Ride, error)
	RemovePendingRide(ctx context.Context, id uuid.UUID) error

	StoreTileManifest(ctx context.Context, rideID uuid.UUID, cells []string) error
	GetTileManifest(ctx context.Context, rideID uuid.UUID) ([]string, error)
}
