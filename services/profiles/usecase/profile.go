package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nomadbikers/ridetrack/internal/pkg/constants"
	"github.com/nomadbikers/ridetrack/internal/pkg/logger"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	natspkg "github.com/nomadbikers/ridetrack/internal/pkg/nats"
	"github.com/nomadbikers/ridetrack/internal/pkg/storage"
	"github.com/nomadbikers/ridetrack/internal/pkg/syncstore"
	"github.com/nomadbikers/ridetrack/services/profiles"
)

// maxAvatarBytes bounds avatar uploads.
const maxAvatarBytes = 2 << 20

// ProfileUC implements the member profile business logic
type ProfileUC struct {
	cfg    *models.Config
	repo   profiles.ProfileRepo
	gw     profiles.ProfileGW
	assets storage.AssetStore
	coord  *syncstore.Coordinator[models.Profile]
}

// NewProfileUC creates a new profile usecase
func NewProfileUC(
	cfg *models.Config,
	repo profiles.ProfileRepo,
	gw profiles.ProfileGW,
	assets storage.AssetStore,
	cacheStore syncstore.Cache,
	natsClient *natspkg.Client,
	gate syncstore.Gate,
) *ProfileUC {
	uc := &ProfileUC{
		cfg:    cfg,
		repo:   repo,
		gw:     gw,
		assets: assets,
	}
	uc.coord = syncstore.New(
		constants.CollectionProfiles,
		constants.KeyProfilesCache,
		constants.SubjectProfilesChanged,
		cacheStore,
		repo.ListProfiles,
		natsClient,
		gate,
	)
	return uc
}

// Register creates the member's profile. The first registrant becomes the
// group leader; the check is advisory, not serialized, so a racing pair of
// first registrations can in theory both claim leadership.
func (uc *ProfileUC) Register(ctx context.Context, id uuid.UUID, name string, age int) (models.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Profile{}, fmt.Errorf("name is required")
	}
	if age <= 0 {
		return models.Profile{}, fmt.Errorf("age must be positive")
	}

	profile := models.Profile{
		ID:   id,
		Name: name,
		Age:  age,
		Role: models.RoleMember,
	}

	err := uc.coord.Mutate(ctx, func(ctx context.Context) error {
		count, err := uc.repo.CountProfiles(ctx)
		if err != nil {
			return err
		}
		if count == 0 {
			profile.Role = models.RoleLeader
		}
		return uc.repo.CreateProfile(ctx, profile)
	})
	if err != nil {
		return models.Profile{}, err
	}

	uc.publishChange(models.ChangeInsert)
	return profile, nil
}

// GetProfile returns a single member profile.
func (uc *ProfileUC) GetProfile(ctx context.Context, id uuid.UUID) (models.Profile, error) {
	return uc.repo.GetProfileByID(ctx, id)
}

// UploadAvatar stores the image in the asset store and points the profile at
// its public URL. Gated while offline through the profile write.
func (uc *ProfileUC) UploadAvatar(ctx context.Context, id uuid.UUID, filename string, image io.Reader) (models.Profile, error) {
	data, err := io.ReadAll(io.LimitReader(image, maxAvatarBytes+1))
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to read avatar: %w", err)
	}
	if len(data) == 0 {
		return models.Profile{}, fmt.Errorf("avatar is empty")
	}
	if len(data) > maxAvatarBytes {
		return models.Profile{}, fmt.Errorf("avatar exceeds %d bytes", maxAvatarBytes)
	}

	path := id.String() + strings.ToLower(filepath.Ext(filename))
	url := uc.assets.GetPublicURL(constants.BucketAvatars, path)

	err = uc.coord.Mutate(ctx, func(ctx context.Context) error {
		if err := uc.assets.UploadBlob(constants.BucketAvatars, path, data); err != nil {
			return fmt.Errorf("failed to upload avatar: %w", err)
		}
		return uc.repo.UpdateAvatar(ctx, id, url)
	})
	if err != nil {
		return models.Profile{}, err
	}

	uc.publishChange(models.ChangeUpdate)
	return uc.repo.GetProfileByID(ctx, id)
}

// LoadCachedProfiles renders the last-known snapshot without touching the
// network.
func (uc *ProfileUC) LoadCachedProfiles(ctx context.Context) []models.Profile {
	return uc.coord.LoadCached(ctx)
}

// ListProfiles returns the freshest view available, falling back to the
// cached snapshot on refresh failure.
func (uc *ProfileUC) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	items, err := uc.coord.Refresh(ctx)
	if err != nil {
		logger.Warn("Profile refresh failed, serving cached snapshot", logger.Err(err))
		items = uc.coord.LoadCached(ctx)
	}
	return items, nil
}

// SubscribeToChanges delivers the refreshed profile list on every remote
// change notification.
func (uc *ProfileUC) SubscribeToChanges(onChange func([]models.Profile)) (func(), error) {
	return uc.coord.SubscribeToChanges(onChange)
}

// Leaderboard ranks members by total recorded distance.
func (uc *ProfileUC) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	return uc.repo.Leaderboard(ctx)
}

func (uc *ProfileUC) publishChange(changeType models.ChangeType) {
	if err := uc.gw.PublishChange(changeType); err != nil {
		logger.Warn("Failed to publish profiles change event", logger.Err(err))
	}
}
