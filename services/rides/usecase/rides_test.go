package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/nomadbikers/ridetrack/internal/pkg/connectivity"
	"github.com/nomadbikers/ridetrack/internal/pkg/database"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	"github.com/nomadbikers/ridetrack/internal/pkg/syncstore"
	"github.com/nomadbikers/ridetrack/services/rides/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGate struct {
	mu     sync.Mutex
	online bool
	subs   []func(connectivity.Status)
}

func (g *fakeGate) Online() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.online
}

func (g *fakeGate) Subscribe(fn func(connectivity.Status)) func() {
	g.mu.Lock()
	g.subs = append(g.subs, fn)
	g.mu.Unlock()
	return func() {}
}

func (g *fakeGate) set(status connectivity.Status) {
	g.mu.Lock()
	g.online = status == connectivity.StatusOnline
	subs := append([]func(connectivity.Status){}, g.subs...)
	g.mu.Unlock()
	for _, fn := range subs {
		fn(status)
	}
}

type rideUCFixture struct {
	uc    *RideUC
	repo  *mocks.MockRideRepo
	cache *mocks.MockRideCache
	gw    *mocks.MockRideGW
	gate  *fakeGate
}

func setupRideUC(t *testing.T, online bool) *rideUCFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	snapshots := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	f := &rideUCFixture{
		repo:  mocks.NewMockRideRepo(ctrl),
		cache: mocks.NewMockRideCache(ctrl),
		gw:    mocks.NewMockRideGW(ctrl),
		gate:  &fakeGate{online: online},
	}
	cfg := &models.Config{Tracking: models.TrackingConfig{TilePrecision: 6}}
	f.uc = NewRideUC(cfg, f.repo, f.cache, snapshots, f.gw, nil, f.gate)
	return f
}

func TestCreateRide(t *testing.T) {
	f := setupRideUC(t, true)

	f.repo.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishChange(models.ChangeInsert).Return(nil)

	ride, err := f.uc.CreateRide(context.Background(), "2025-09-14T06:00:00Z", "Plaza Senayan", "Puncak Pass")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, ride.ID)
	assert.Equal(t, "Puncak Pass", ride.Destination)
}

func TestCreateRide_InvalidDate(t *testing.T) {
	f := setupRideUC(t, true)

	_, err := f.uc.CreateRide(context.Background(), "next sunday", "A", "B")
	assert.Error(t, err)
}

func TestCreateRide_OfflineGated(t *testing.T) {
	f := setupRideUC(t, false)

	_, err := f.uc.CreateRide(context.Background(), "2025-09-14T06:00:00Z", "A", "B")
	assert.ErrorIs(t, err, syncstore.ErrOffline)
}

func TestToggleFavorite_OfflineGated(t *testing.T) {
	f := setupRideUC(t, false)

	err := f.uc.ToggleFavorite(context.Background(), uuid.New(), true)
	assert.ErrorIs(t, err, syncstore.ErrOffline)
}

func TestListRides_RefreshesAndSorts(t *testing.T) {
	f := setupRideUC(t, true)

	a := models.Ride{ID: uuid.New(), Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	b := models.Ride{ID: uuid.New(), Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), IsFavorite: true}
	c := models.Ride{ID: uuid.New(), Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}

	f.repo.EXPECT().ListRides(gomock.Any()).Return([]models.Ride{a, b, c}, nil)
	f.cache.EXPECT().PendingRides(gomock.Any()).Return(nil, nil).AnyTimes()

	got, err := f.uc.ListRides(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []uuid.UUID{b.ID, c.ID, a.ID}, []uuid.UUID{got[0].ID, got[1].ID, got[2].ID})
}

func TestListRides_FallsBackToCacheOnRefreshFailure(t *testing.T) {
	f := setupRideUC(t, true)

	cached := models.Ride{ID: uuid.New(), Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), MeetingPoint: "A"}
	f.cache.EXPECT().PendingRides(gomock.Any()).Return(nil, nil).AnyTimes()

	// Seed the snapshot through a successful refresh, then fail the next one.
	f.repo.EXPECT().ListRides(gomock.Any()).Return([]models.Ride{cached}, nil)
	_, err := f.uc.ListRides(context.Background())
	require.NoError(t, err)

	f.repo.EXPECT().ListRides(gomock.Any()).Return(nil, errors.New("connection refused"))
	got, err := f.uc.ListRides(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, cached.ID, got[0].ID)
}

func TestLoadCachedRides_OverlaysPending(t *testing.T) {
	f := setupRideUC(t, true)

	pending := finishedTestRide()
	f.cache.EXPECT().PendingRides(gomock.Any()).Return([]models.Ride{pending}, nil)

	got := f.uc.LoadCachedRides(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, pending.ID, got[0].ID)
}

func finishedTestRide() models.Ride {
	start := time.Now().Add(-time.Hour).UnixMilli()
	end := time.Now().UnixMilli()
	distance := 23.4
	duration := end - start
	return models.Ride{
		ID:           uuid.New(),
		Date:         time.Now().UTC(),
		MeetingPoint: "Plaza Senayan",
		Destination:  "Puncak Pass",
		RoutePoints: []models.RoutePoint{
			{Lat: -6.2, Lng: 106.8, Timestamp: start},
			{Lat: -6.3, Lng: 106.9, Timestamp: end},
		},
		StartTime: &start,
		EndTime:   &end,
		Distance:  &distance,
		Duration:  &duration,
	}
}

func TestCompleteRide_OnlinePersistsAndAnnounces(t *testing.T) {
	f := setupRideUC(t, true)
	ride := finishedTestRide()

	f.cache.EXPECT().StoreTileManifest(gomock.Any(), ride.ID, gomock.Any()).Return(nil)
	f.repo.EXPECT().CompleteRide(gomock.Any(), ride).Return(nil)
	f.gw.EXPECT().PublishChange(models.ChangeUpdate).Return(nil)
	f.gw.EXPECT().PublishRideCompleted(gomock.Any()).Return(nil)

	require.NoError(t, f.uc.CompleteRide(context.Background(), ride))
}

func TestCompleteRide_OfflineQueuesLocally(t *testing.T) {
	f := setupRideUC(t, false)
	ride := finishedTestRide()

	f.cache.EXPECT().StoreTileManifest(gomock.Any(), ride.ID, gomock.Any()).Return(nil)
	f.cache.EXPECT().EnqueuePendingRide(gomock.Any(), ride).Return(nil)

	require.NoError(t, f.uc.CompleteRide(context.Background(), ride))
}

func TestCompleteRide_WriteFailureQueuesAndSurfaces(t *testing.T) {
	f := setupRideUC(t, true)
	ride := finishedTestRide()

	f.cache.EXPECT().StoreTileManifest(gomock.Any(), ride.ID, gomock.Any()).Return(nil)
	f.repo.EXPECT().CompleteRide(gomock.Any(), ride).Return(errors.New("connection reset"))
	f.cache.EXPECT().EnqueuePendingRide(gomock.Any(), ride).Return(nil)

	err := f.uc.CompleteRide(context.Background(), ride)
	assert.Error(t, err)
}

func TestCompleteRide_RejectsUnfinishedRide(t *testing.T) {
	f := setupRideUC(t, true)

	err := f.uc.CompleteRide(context.Background(), models.Ride{ID: uuid.New()})
	assert.Error(t, err)
}

func TestFlushPendingRides(t *testing.T) {
	f := setupRideUC(t, true)

	first := finishedTestRide()
	second := finishedTestRide()
	f.cache.EXPECT().PendingRides(gomock.Any()).Return([]models.Ride{first, second}, nil)
	f.repo.EXPECT().CompleteRide(gomock.Any(), first).Return(nil)
	f.repo.EXPECT().CompleteRide(gomock.Any(), second).Return(nil)
	f.cache.EXPECT().RemovePendingRide(gomock.Any(), first.ID).Return(nil)
	f.cache.EXPECT().RemovePendingRide(gomock.Any(), second.ID).Return(nil)
	f.gw.EXPECT().PublishChange(models.ChangeUpdate).Return(nil).Times(2)
	f.gw.EXPECT().PublishRideCompleted(gomock.Any()).Return(nil).Times(2)

	n, err := f.uc.FlushPendingRides(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestFlushPendingRides_KeepsFailedEntry(t *testing.T) {
	f := setupRideUC(t, true)

	stuck := finishedTestRide()
	f.cache.EXPECT().PendingRides(gomock.Any()).Return([]models.Ride{stuck}, nil)
	f.repo.EXPECT().CompleteRide(gomock.Any(), stuck).Return(errors.New("still down"))

	n, err := f.uc.FlushPendingRides(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 0, n)
}

func TestOnlineTransition_TriggersFlush(t *testing.T) {
	f := setupRideUC(t, false)

	ride := finishedTestRide()
	flushed := make(chan struct{})
	f.cache.EXPECT().PendingRides(gomock.Any()).Return([]models.Ride{ride}, nil)
	f.repo.EXPECT().CompleteRide(gomock.Any(), ride).Return(nil)
	f.cache.EXPECT().RemovePendingRide(gomock.Any(), ride.ID).Return(nil)
	f.gw.EXPECT().PublishChange(models.ChangeUpdate).Return(nil)
	f.gw.EXPECT().PublishRideCompleted(gomock.Any()).DoAndReturn(func(models.RideCompletedEvent) error {
		close(flushed)
		return nil
	})

	f.gate.set(connectivity.StatusOnline)

	select {
	case <-flushed:
	case <-time.After(2 * time.Second):
		t.Fatal("expected pending rides to flush on online transition")
	}
}

func TestTileManifest_ServedFromCache(t *testing.T) {
	f := setupRideUC(t, true)

	id := uuid.New()
	f.cache.EXPECT().GetTileManifest(gomock.Any(), id).Return([]string{"qqguyv"}, nil)

	cells, err := f.uc.TileManifest(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []string{"qqguyv"}, cells)
}

func TestTileManifest_ComputedFromStoredRoute(t *testing.T) {
	f := setupRideUC(t, true)

	ride := finishedTestRide()
	f.cache.EXPECT().GetTileManifest(gomock.Any(), ride.ID).Return(nil, nil)
	f.repo.EXPECT().GetRideByID(gomock.Any(), ride.ID).Return(ride, nil)
	f.cache.EXPECT().StoreTileManifest(gomock.Any(), ride.ID, gomock.Any()).Return(nil)

	cells, err := f.uc.TileManifest(context.Background(), ride.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, cells)
}
