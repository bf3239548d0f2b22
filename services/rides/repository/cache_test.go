package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/nomadbikers/ridetrack/internal/pkg/constants"
	"github.com/nomadbikers/ridetrack/internal/pkg/database"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	"github.com/nomadbikers/ridetrack/services/rides"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRideCache(t *testing.T) (rides.RideCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRideCache(&database.RedisClient{Client: client}), mr
}

func finishedRide() models.Ride {
	start := time.Now().Add(-time.Hour).UnixMilli()
	end := time.Now().UnixMilli()
	distance := 18.2
	duration := end - start
	return models.Ride{
		ID:           uuid.New(),
		Date:         time.Now().UTC().Truncate(time.Second),
		MeetingPoint: "Plaza Senayan",
		Destination:  "Puncak Pass",
		RoutePoints:  []models.RoutePoint{{Lat: -6.2, Lng: 106.8, Timestamp: start}},
		StartTime:    &start,
		EndTime:      &end,
		Distance:     &distance,
		Duration:     &duration,
	}
}

func TestPendingQueue_RoundTrip(t *testing.T) {
	cache, _ := setupRideCache(t)
	ctx := context.Background()

	ride := finishedRide()
	require.NoError(t, cache.EnqueuePendingRide(ctx, ride))

	pending, err := cache.PendingRides(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, ride.ID, pending[0].ID)
	assert.Equal(t, *ride.Distance, *pending[0].Distance)

	require.NoError(t, cache.RemovePendingRide(ctx, ride.ID))
	pending, err = cache.PendingRides(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestEnqueuePendingRide_ReplayOverwrites(t *testing.T) {
	cache, _ := setupRideCache(t)
	ctx := context.Background()

	ride := finishedRide()
	require.NoError(t, cache.EnqueuePendingRide(ctx, ride))

	longer := 99.9
	ride.Distance = &longer
	require.NoError(t, cache.EnqueuePendingRide(ctx, ride))

	pending, err := cache.PendingRides(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 99.9, *pending[0].Distance)
}

func TestPendingRides_SkipsUnreadableEntry(t *testing.T) {
	cache, mr := setupRideCache(t)
	ctx := context.Background()

	ride := finishedRide()
	require.NoError(t, cache.EnqueuePendingRide(ctx, ride))
	mr.HSet(constants.KeyPendingRides, "broken", "{not json")

	pending, err := cache.PendingRides(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, ride.ID, pending[0].ID)
}

func TestTileManifest_RoundTrip(t *testing.T) {
	cache, _ := setupRideCache(t)
	ctx := context.Background()

	rideID := uuid.New()
	cells := []string{"qqguyv", "qqguyy", "qqguzn"}
	require.NoError(t, cache.StoreTileManifest(ctx, rideID, cells))

	got, err := cache.GetTileManifest(ctx, rideID)
	require.NoError(t, err)
	assert.Equal(t, cells, got)
}

func TestGetTileManifest_MissingReturnsNil(t *testing.T) {
	cache, _ := setupRideCache(t)

	got, err := cache.GetTileManifest(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}
