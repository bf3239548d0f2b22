package profiles

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
)

// go:generate mockgen -destination=mocks/mock_profiles.go -package=mocks github.com/nomadbikers/ridetrack/services/profiles ProfileUC,ProfileRepo,ProfileGW

// ProfileUC defines the interface for member profile business logic
type ProfileUC interface {
	// Register creates the member's profile. The first registrant in the
	// group becomes the leader; everyone after is a member.
	Register(ctx context.Context, id uuid.UUID, name string, age int) (models.Profile, error)
	GetProfile(ctx context.Context, id uuid.UUID) (models.Profile, error)
	UploadAvatar(ctx context.Context, id uuid.UUID, filename string, image io.Reader) (models.Profile, error)

	// Listing: cached snapshot without network, or refreshed view
	LoadCachedProfiles(ctx context.Context) []models.Profile
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	SubscribeToChanges(onChange func([]models.Profile)) (func(), error)

	// Leaderboard ranks members by total recorded distance
	Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)
}
