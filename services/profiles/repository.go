package profiles

import (
	"context"

	"github.com/google/uuid"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
)

// ProfileRepo defines the interface for profile data access
type ProfileRepo interface {
	CreateProfile(ctx context.Context, profile models.Profile) error
	GetProfileByID(ctx context.Context, id uuid.UUID) (models.Profile, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error
	CountProfiles(ctx context.Context) (int, error)

	// Leaderboard aggregates finished rides per recorder, ranked by total
	// distance descending.
	Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)
}
