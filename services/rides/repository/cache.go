package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/nomadbikers/ridetrack/internal/pkg/constants"
	"github.com/nomadbikers/ridetrack/internal/pkg/database"
	"github.com/nomadbikers/ridetrack/internal/pkg/logger"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	"github.com/nomadbikers/ridetrack/services/rides"
)

// RideCache implements the device-local ride storage: the pending-write queue
// and the per-ride tile precache manifests.
type RideCache struct {
	redis *database.RedisClient
}

// NewRideCache creates a new ride cache
func NewRideCache(redisClient *database.RedisClient) rides.RideCache {
	return &RideCache{
		redis: redisClient,
	}
}

// EnqueuePendingRide stores a completed-but-unsynced ride keyed by id, so a
// replayed completion overwrites its earlier queue entry instead of
// duplicating it.
func (c *RideCache) EnqueuePendingRide(ctx context.Context, ride models.Ride) error {
	raw, err := json.Marshal(ride)
	if err != nil {
		return fmt.Errorf("failed to encode pending ride: %w", err)
	}
	if err := c.redis.HSet(ctx, constants.KeyPendingRides, ride.ID.String(), raw); err != nil {
		return fmt.Errorf("failed to enqueue pending ride: %w", err)
	}
	return nil
}

// PendingRides returns all queued completions. Unreadable entries are dropped
// from the result but kept in the queue for diagnosis.
func (c *RideCache) PendingRides(ctx context.Context) ([]models.Ride, error) {
	entries, err := c.redis.HGetAll(ctx, constants.KeyPendingRides)
	if err != nil {
		return nil, fmt.Errorf("failed to read pending rides: %w", err)
	}

	items := make([]models.Ride, 0, len(entries))
	for id, raw := range entries {
		var ride models.Ride
		if err := json.Unmarshal([]byte(raw), &ride); err != nil {
			logger.Warn("Skipping unreadable pending ride",
				logger.String("ride_id", id),
				logger.Err(err))
			continue
		}
		items = append(items, ride)
	}
	return items, nil
}

// RemovePendingRide drops a queue entry after the remote store confirmed it.
func (c *RideCache) RemovePendingRide(ctx context.Context, id uuid.UUID) error {
	return c.redis.HDel(ctx, constants.KeyPendingRides, id.String())
}

// StoreTileManifest persists the geohash cells covering a ride's route.
func (c *RideCache) StoreTileManifest(ctx context.Context, rideID uuid.UUID, cells []string) error {
	raw, err := json.Marshal(cells)
	if err != nil {
		return fmt.Errorf("failed to encode tile manifest: %w", err)
	}
	key := fmt.Sprintf(constants.KeyRideTiles, rideID.String())
	if err := c.redis.Set(ctx, key, raw, 0); err != nil {
		return fmt.Errorf("failed to store tile manifest: %w", err)
	}
	return nil
}

// GetTileManifest returns the stored manifest, nil when none exists.
func (c *RideCache) GetTileManifest(ctx context.Context, rideID uuid.UUID) ([]string, error) {
	key := fmt.Sprintf(constants.KeyRideTiles, rideID.String())
	raw, err := c.redis.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read tile manifest: %w", err)
	}

	var cells []string
	if err := json.Unmarshal([]byte(raw), &cells); err != nil {
		return nil, fmt.Errorf("failed to decode tile manifest: %w", err)
	}
	return cells, nil
}
