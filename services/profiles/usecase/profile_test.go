package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/nomadbikers/ridetrack/internal/pkg/database"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	"github.com/nomadbikers/ridetrack/internal/pkg/storage"
	"github.com/nomadbikers/ridetrack/internal/pkg/syncstore"
	"github.com/nomadbikers/ridetrack/services/profiles/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticGate bool

func (g staticGate) Online() bool { return bool(g) }

type profileFixture struct {
	uc   *ProfileUC
	repo *mocks.MockProfileRepo
	gw   *mocks.MockProfileGW
}

func setupProfileUC(t *testing.T, online bool) *profileFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	snapshots := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	assets, err := storage.NewDiskStore(models.AssetsConfig{
		Root:    t.TempDir(),
		BaseURL: "http://localhost:9999/assets",
	})
	require.NoError(t, err)

	f := &profileFixture{
		repo: mocks.NewMockProfileRepo(ctrl),
		gw:   mocks.NewMockProfileGW(ctrl),
	}
	f.uc = NewProfileUC(&models.Config{}, f.repo, f.gw, assets, snapshots, nil, staticGate(online))
	return f
}

func TestRegister_FirstRegistrantBecomesLeader(t *testing.T) {
	f := setupProfileUC(t, true)

	f.repo.EXPECT().CountProfiles(gomock.Any()).Return(0, nil)
	f.repo.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Profile) error {
			assert.Equal(t, models.RoleLeader, p.Role)
			return nil
		})
	f.gw.EXPECT().PublishChange(models.ChangeInsert).Return(nil)

	profile, err := f.uc.Register(context.Background(), uuid.New(), "Sari", 34)
	require.NoError(t, err)
	assert.Equal(t, models.RoleLeader, profile.Role)
}

func TestRegister_LaterRegistrantsAreMembers(t *testing.T) {
	f := setupProfileUC(t, true)

	f.repo.EXPECT().CountProfiles(gomock.Any()).Return(3, nil)
	f.repo.EXPECT().CreateProfile(gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishChange(models.ChangeInsert).Return(nil)

	profile, err := f.uc.Register(context.Background(), uuid.New(), "Budi", 41)
	require.NoError(t, err)
	assert.Equal(t, models.RoleMember, profile.Role)
}

func TestRegister_RejectsBlankName(t *testing.T) {
	f := setupProfileUC(t, true)

	_, err := f.uc.Register(context.Background(), uuid.New(), "   ", 30)
	assert.Error(t, err)
}

func TestRegister_OfflineGated(t *testing.T) {
	f := setupProfileUC(t, false)

	_, err := f.uc.Register(context.Background(), uuid.New(), "Sari", 34)
	assert.ErrorIs(t, err, syncstore.ErrOffline)
}

func TestUploadAvatar(t *testing.T) {
	f := setupProfileUC(t, true)
	id := uuid.New()

	f.repo.EXPECT().UpdateAvatar(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, url string) error {
			assert.Contains(t, url, "avatars/")
			assert.Contains(t, url, ".png")
			return nil
		})
	f.gw.EXPECT().PublishChange(models.ChangeUpdate).Return(nil)
	f.repo.EXPECT().GetProfileByID(gomock.Any(), id).Return(models.Profile{ID: id}, nil)

	profile, err := f.uc.UploadAvatar(context.Background(), id, "me.png", bytes.NewReader([]byte("png bytes")))
	require.NoError(t, err)
	assert.Equal(t, id, profile.ID)
}

func TestUploadAvatar_RejectsOversized(t *testing.T) {
	f := setupProfileUC(t, true)

	_, err := f.uc.UploadAvatar(context.Background(), uuid.New(), "huge.png",
		bytes.NewReader(make([]byte, maxAvatarBytes+1)))
	assert.Error(t, err)
}

func TestUploadAvatar_OfflineGated(t *testing.T) {
	f := setupProfileUC(t, false)

	_, err := f.uc.UploadAvatar(context.Background(), uuid.New(), "me.png",
		bytes.NewReader([]byte("png bytes")))
	assert.ErrorIs(t, err, syncstore.ErrOffline)
}

func TestListProfiles_FallsBackToCache(t *testing.T) {
	f := setupProfileUC(t, true)

	seeded := models.Profile{ID: uuid.New(), Name: "Sari", Age: 34, Role: models.RoleLeader}

	f.repo.EXPECT().ListProfiles(gomock.Any()).Return([]models.Profile{seeded}, nil)
	got, err := f.uc.ListProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	f.repo.EXPECT().ListProfiles(gomock.Any()).Return(nil, errors.New("connection refused"))
	got, err = f.uc.ListProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, seeded.ID, got[0].ID)
}

func TestLeaderboard(t *testing.T) {
	f := setupProfileUC(t, true)

	entries := []models.LeaderboardEntry{
		{Profile: models.Profile{Name: "Sari"}, TotalDistance: 128.4, RideCount: 6},
		{Profile: models.Profile{Name: "Budi"}, TotalDistance: 42.0, RideCount: 2},
	}
	f.repo.EXPECT().Leaderboard(gomock.Any()).Return(entries, nil)

	got, err := f.uc.Leaderboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}
