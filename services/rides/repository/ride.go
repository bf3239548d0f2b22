package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nomadbikers/ridetrack/internal/pkg/database"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	"github.com/nomadbikers/ridetrack/services/rides"
)

// RideRepo implements ride persistence against the remote store
type RideRepo struct {
	cfg *models.Config
	db  *database.PostgresClient
}

// NewRideRepo creates a new ride repository
func NewRideRepo(cfg *models.Config, db *database.PostgresClient) rides.RideRepo {
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

// rideRow mirrors the rides table; the route is stored as a JSONB column.
type rideRow struct {
	models.Ride
	RoutePoints []byte `db:"route_points"`
}

func (r rideRow) toModel() (models.Ride, error) {
	ride := r.Ride
	ride.RoutePoints = nil
	if len(r.RoutePoints) > 0 {
		if err := json.Unmarshal(r.RoutePoints, &ride.RoutePoints); err != nil {
			return models.Ride{}, fmt.Errorf("failed to decode route for ride %s: %w", ride.ID, err)
		}
	}
	return ride, nil
}

func encodeRoute(points []models.RoutePoint) ([]byte, error) {
	if points == nil {
		points = []models.RoutePoint{}
	}
	return json.Marshal(points)
}

const rideColumns = `id, date, meeting_point, destination, route_points, start_time, end_time, is_favorite, recorder_id, distance, duration`

// CreateRide inserts a planned ride with an empty route.
func (r *RideRepo) CreateRide(ctx context.Context, ride models.Ride) error {
	route, err := encodeRoute(ride.RoutePoints)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO rides (id, date, meeting_point, destination, route_points, is_favorite, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())`

	_, err = r.db.GetDB().ExecContext(ctx, query,
		ride.ID, ride.Date, ride.MeetingPoint, ride.Destination, route, ride.IsFavorite)
	if err != nil {
		return fmt.Errorf("failed to create ride: %w", err)
	}
	return nil
}

// GetRideByID fetches a single ride with its route.
func (r *RideRepo) GetRideByID(ctx context.Context, id uuid.UUID) (models.Ride, error) {
	query := fmt.Sprintf(`SELECT %s FROM rides WHERE id = $1`, rideColumns)

	var row rideRow
	if err := r.db.GetDB().GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Ride{}, rides.ErrRideNotFound
		}
		return models.Ride{}, fmt.Errorf("failed to get ride: %w", err)
	}
	return row.toModel()
}

// ListRides returns the full collection in display order: favorites first,
// then newest date first.
func (r *RideRepo) ListRides(ctx context.Context) ([]models.Ride, error) {
	query := fmt.Sprintf(`SELECT %s FROM rides ORDER BY is_favorite DESC, date DESC`, rideColumns)

	var rows []rideRow
	if err := r.db.GetDB().SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list rides: %w", err)
	}

	items := make([]models.Ride, 0, len(rows))
	for _, row := range rows {
		ride, err := row.toModel()
		if err != nil {
			return nil, err
		}
		items = append(items, ride)
	}
	return items, nil
}

// UpdateFavorite flips the favorite flag. It touches nothing else: a finished
// ride stays frozen apart from this one field.
func (r *RideRepo) UpdateFavorite(ctx context.Context, id uuid.UUID, favorite bool) error {
	query := `UPDATE rides SET is_favorite = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.GetDB().ExecContext(ctx, query, id, favorite)
	if err != nil {
		return fmt.Errorf("failed to update favorite: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return rides.ErrRideNotFound
	}
	return nil
}

// DeleteRide removes a ride.
func (r *RideRepo) DeleteRide(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM rides WHERE id = $1`

	result, err := r.db.GetDB().ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete ride: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return rides.ErrRideNotFound
	}
	return nil
}

// CompleteRide upserts the finished recording. Replays from the offline queue
// hit the conflict path and rewrite the same values, so the operation is
// idempotent; the favorite flag is deliberately left out of the update set.
func (r *RideRepo) CompleteRide(ctx context.Context, ride models.Ride) error {
	route, err := encodeRoute(ride.RoutePoints)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO rides (id, date, meeting_point, destination, route_points, start_time, end_time, is_favorite, recorder_id, distance, duration, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			route_points = EXCLUDED.route_points,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			recorder_id = EXCLUDED.recorder_id,
			distance = EXCLUDED.distance,
			duration = EXCLUDED.duration,
			updated_at = NOW()`

	_, err = r.db.GetDB().ExecContext(ctx, query,
		ride.ID, ride.Date, ride.MeetingPoint, ride.Destination, route,
		ride.StartTime, ride.EndTime, ride.IsFavorite, ride.RecorderID,
		ride.Distance, ride.Duration)
	if err != nil {
		return fmt.Errorf("failed to persist completed ride: %w", err)
	}
	return nil
}
