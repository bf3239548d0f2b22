package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nomadbikers/ridetrack/internal/pkg/connectivity"
	"github.com/nomadbikers/ridetrack/internal/pkg/constants"
	"github.com/nomadbikers/ridetrack/internal/pkg/logger"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	natspkg "github.com/nomadbikers/ridetrack/internal/pkg/nats"
	"github.com/nomadbikers/ridetrack/internal/pkg/syncstore"
	"github.com/nomadbikers/ridetrack/internal/utils"
	"github.com/nomadbikers/ridetrack/services/rides"
)

// ConnectivityGate is the slice of the connectivity monitor the use case
// depends on: the current state plus transition notifications.
type ConnectivityGate interface {
	Online() bool
	Subscribe(fn func(connectivity.Status)) func()
}

// RideUC implements the ride business logic
type RideUC struct {
	cfg   *models.Config
	repo  rides.RideRepo
	cache rides.RideCache
	gw    rides.RideGW
	gate  ConnectivityGate
	coord *syncstore.Coordinator[models.Ride]
}

// NewRideUC creates a new ride usecase. The coordinator keeps the cached
// rides snapshot reconciled with the remote store; the connectivity
// subscription flushes rides completed offline once the store is reachable
// again.
func NewRideUC(
	cfg *models.Config,
	repo rides.RideRepo,
	cache rides.RideCache,
	cacheStore syncstore.Cache,
	gw rides.RideGW,
	natsClient *natspkg.Client,
	gate ConnectivityGate,
) *RideUC {
	uc := &RideUC{
		cfg:   cfg,
		repo:  repo,
		cache: cache,
		gw:    gw,
		gate:  gate,
	}
	uc.coord = syncstore.New(
		constants.CollectionRides,
		constants.KeyRidesCache,
		constants.SubjectRidesChanged,
		cacheStore,
		repo.ListRides,
		natsClient,
		gate,
	)

	gate.Subscribe(func(status connectivity.Status) {
		if status != connectivity.StatusOnline {
			return
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if n, err := uc.FlushPendingRides(ctx); err != nil {
				logger.Warn("Pending ride flush incomplete", logger.Err(err))
			} else if n > 0 {
				logger.Info("Flushed pending rides", logger.Int("count", n))
			}
		}()
	})

	return uc
}

// CreateRide schedules a new ride. Rejected with syncstore.ErrOffline while
// the remote store is unreachable; scheduling is never queued.
func (uc *RideUC) CreateRide(ctx context.Context, date, meetingPoint, destination string) (models.Ride, error) {
	when, err := models.ParseTime(date)
	if err != nil {
		return models.Ride{}, fmt.Errorf("invalid ride date: %w", err)
	}
	if meetingPoint == "" || destination == "" {
		return models.Ride{}, fmt.Errorf("meeting point and destination are required")
	}

	ride := models.Ride{
		ID:           uuid.New(),
		Date:         when,
		MeetingPoint: meetingPoint,
		Destination:  destination,
	}

	err = uc.coord.Mutate(ctx, func(ctx context.Context) error {
		return uc.repo.CreateRide(ctx, ride)
	})
	if err != nil {
		return models.Ride{}, err
	}

	uc.publishChange(models.ChangeInsert)
	return ride, nil
}

// GetRide returns a single ride from the remote store.
func (uc *RideUC) GetRide(ctx context.Context, id uuid.UUID) (models.Ride, error) {
	return uc.repo.GetRideByID(ctx, id)
}

// ToggleFavorite flips the only field a finished ride may still change.
// Gated while offline; there is no optimistic local fallback.
func (uc *RideUC) ToggleFavorite(ctx context.Context, id uuid.UUID, favorite bool) error {
	err := uc.coord.Mutate(ctx, func(ctx context.Context) error {
		return uc.repo.UpdateFavorite(ctx, id, favorite)
	})
	if err != nil {
		return err
	}

	uc.publishChange(models.ChangeUpdate)
	return nil
}

// DeleteRide removes a ride from the remote store. Gated while offline.
func (uc *RideUC) DeleteRide(ctx context.Context, id uuid.UUID) error {
	err := uc.coord.Mutate(ctx, func(ctx context.Context) error {
		return uc.repo.DeleteRide(ctx, id)
	})
	if err != nil {
		return err
	}

	uc.publishChange(models.ChangeDelete)
	return nil
}

// LoadCachedRides renders the last-known snapshot without touching the
// network, with rides completed offline overlaid so the member sees their own
// recording immediately.
func (uc *RideUC) LoadCachedRides(ctx context.Context) []models.Ride {
	return uc.overlayPending(ctx, uc.coord.LoadCached(ctx))
}

// ListRides returns the freshest view available: a refreshed snapshot when
// the remote store answers, otherwise the last-known-good cache. Refresh
// failures are diagnostics, not caller errors.
func (uc *RideUC) ListRides(ctx context.Context) ([]models.Ride, error) {
	items, err := uc.coord.Refresh(ctx)
	if err != nil {
		logger.Warn("Ride refresh failed, serving cached snapshot", logger.Err(err))
		items = uc.coord.LoadCached(ctx)
	}
	return uc.overlayPending(ctx, items), nil
}

// SubscribeToChanges delivers the refreshed, display-ordered ride list on
// every remote change notification.
func (uc *RideUC) SubscribeToChanges(onChange func([]models.Ride)) (func(), error) {
	return uc.coord.SubscribeToChanges(func(items []models.Ride) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		onChange(uc.overlayPending(ctx, items))
	})
}

// CompleteRide persists a finished recording. Offline the record degrades to
// the local pending queue and is replayed on the next online transition; an
// online write failure also queues the record so a recording is never lost,
// but the failure is still surfaced.
func (uc *RideUC) CompleteRide(ctx context.Context, ride models.Ride) error {
	if !ride.Finished() {
		return fmt.Errorf("ride %s has no end time", ride.ID)
	}

	uc.storeTileManifest(ctx, ride)

	if !uc.gate.Online() {
		if err := uc.cache.EnqueuePendingRide(ctx, ride); err != nil {
			return fmt.Errorf("failed to queue ride while offline: %w", err)
		}
		logger.Info("Ride queued for sync", logger.String("ride_id", ride.ID.String()))
		return nil
	}

	if err := uc.repo.CompleteRide(ctx, ride); err != nil {
		if qerr := uc.cache.EnqueuePendingRide(ctx, ride); qerr != nil {
			logger.Error("Failed to queue ride after write failure",
				logger.String("ride_id", ride.ID.String()),
				logger.Err(qerr))
		}
		return fmt.Errorf("failed to persist completed ride: %w", err)
	}

	uc.announceCompletion(ride)
	return nil
}

// FlushPendingRides replays rides completed while offline. Each successful
// replay removes the queue entry; failures keep the entry for the next
// flush. Returns how many rides were synced.
func (uc *RideUC) FlushPendingRides(ctx context.Context) (int, error) {
	pending, err := uc.cache.PendingRides(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read pending rides: %w", err)
	}

	var flushed int
	var lastErr error
	for _, ride := range pending {
		if err := uc.repo.CompleteRide(ctx, ride); err != nil {
			lastErr = err
			continue
		}
		if err := uc.cache.RemovePendingRide(ctx, ride.ID); err != nil {
			logger.Warn("Failed to dequeue synced ride",
				logger.String("ride_id", ride.ID.String()),
				logger.Err(err))
		}
		uc.announceCompletion(ride)
		flushed++
	}
	return flushed, lastErr
}

// TileManifest returns the geohash cells covering a ride's route, for
// precaching map tiles before going out of coverage. Computed lazily from the
// stored route when no manifest was cached at completion time.
func (uc *RideUC) TileManifest(ctx context.Context, id uuid.UUID) ([]string, error) {
	cells, err := uc.cache.GetTileManifest(ctx, id)
	if err == nil && len(cells) > 0 {
		return cells, nil
	}

	ride, err := uc.repo.GetRideByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cells = utils.RegionTrail(ride.RoutePoints, uc.cfg.Tracking.TilePrecision)
	if len(cells) > 0 {
		if err := uc.cache.StoreTileManifest(ctx, id, cells); err != nil {
			logger.Warn("Failed to store tile manifest",
				logger.String("ride_id", id.String()),
				logger.Err(err))
		}
	}
	return cells, nil
}

// overlayPending merges queued completions over the snapshot so the local
// view reflects recordings the remote store has not confirmed yet.
func (uc *RideUC) overlayPending(ctx context.Context, items []models.Ride) []models.Ride {
	pending, err := uc.cache.PendingRides(ctx)
	if err != nil {
		logger.Warn("Failed to read pending rides for overlay", logger.Err(err))
		pending = nil
	}

	for _, p := range pending {
		replaced := false
		for i := range items {
			if items[i].ID == p.ID {
				items[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			items = append(items, p)
		}
	}

	models.SortRidesForDisplay(items)
	return items
}

func (uc *RideUC) storeTileManifest(ctx context.Context, ride models.Ride) {
	cells := utils.RegionTrail(ride.RoutePoints, uc.cfg.Tracking.TilePrecision)
	if len(cells) == 0 {
		return
	}
	if err := uc.cache.StoreTileManifest(ctx, ride.ID, cells); err != nil {
		logger.Warn("Failed to store tile manifest",
			logger.String("ride_id", ride.ID.String()),
			logger.Err(err))
	}
}

func (uc *RideUC) announceCompletion(ride models.Ride) {
	uc.publishChange(models.ChangeUpdate)

	event := models.RideCompletedEvent{
		RideID:   ride.ID.String(),
		Distance: derefFloat(ride.Distance),
		Duration: derefInt64(ride.Duration),
	}
	if ride.RecorderID != nil {
		event.RecorderID = ride.RecorderID.String()
	}
	if err := uc.gw.PublishRideCompleted(event); err != nil {
		logger.Warn("Failed to publish ride completion",
			logger.String("ride_id", ride.ID.String()),
			logger.Err(err))
	}
}

func (uc *RideUC) publishChange(changeType models.ChangeType) {
	if err := uc.gw.PublishChange(changeType); err != nil {
		logger.Warn("Failed to publish rides change event", logger.Err(err))
	}
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefInt64(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
