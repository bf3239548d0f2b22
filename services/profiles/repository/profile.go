package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nomadbikers/ridetrack/internal/pkg/database"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	"github.com/nomadbikers/ridetrack/services/profiles"
)

// ProfileRepo implements profile persistence against the remote store
type ProfileRepo struct {
	cfg *models.Config
	db  *database.PostgresClient
}

// NewProfileRepo creates a new profile repository
func NewProfileRepo(cfg *models.Config, db *database.PostgresClient) profiles.ProfileRepo {
	return &ProfileRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateProfile inserts a member profile.
func (r *ProfileRepo) CreateProfile(ctx context.Context, profile models.Profile) error {
	query := `
		INSERT INTO profiles (id, name, age, avatar_url, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())`

	_, err := r.db.GetDB().ExecContext(ctx, query,
		profile.ID, profile.Name, profile.Age, profile.AvatarURL, profile.Role)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetProfileByID fetches a single profile.
func (r *ProfileRepo) GetProfileByID(ctx context.Context, id uuid.UUID) (models.Profile, error) {
	query := `SELECT id, name, age, avatar_url, role FROM profiles WHERE id = $1`

	var profile models.Profile
	if err := r.db.GetDB().GetContext(ctx, &profile, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, profiles.ErrProfileNotFound
		}
		return models.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// ListProfiles returns all member profiles, leader first.
func (r *ProfileRepo) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	query := `SELECT id, name, age, avatar_url, role FROM profiles ORDER BY role = 'leader' DESC, name ASC`

	var items []models.Profile
	if err := r.db.GetDB().SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return items, nil
}

// UpdateAvatar points the profile at a new stored avatar.
func (r *ProfileRepo) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error {
	query := `UPDATE profiles SET avatar_url = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.GetDB().ExecContext(ctx, query, id, avatarURL)
	if err != nil {
		return fmt.Errorf("failed to update avatar: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return profiles.ErrProfileNotFound
	}
	return nil
}

// CountProfiles reports how many members have registered.
func (r *ProfileRepo) CountProfiles(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetDB().GetContext(ctx, &count, `SELECT COUNT(*) FROM profiles`); err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}
	return count, nil
}

// leaderboardRow flattens the profile columns next to the aggregates.
type leaderboardRow struct {
	models.Profile
	TotalDistance float64 `db:"total_distance"`
	RideCount     int     `db:"ride_count"`
}

// Leaderboard aggregates finished rides per recorder. Members with no
// recorded ride appear with zero totals.
func (r *ProfileRepo) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	query := `
		SELECT p.id, p.name, p.age, p.avatar_url, p.role,
		       COALESCE(SUM(r.distance), 0) AS total_distance,
		       COUNT(r.id) AS ride_count
		FROM profiles p
		LEFT JOIN rides r ON r.recorder_id = p.id AND r.end_time IS NOT NULL
		GROUP BY p.id, p.name, p.age, p.avatar_url, p.role
		ORDER BY total_distance DESC, p.name ASC`

	var rows []leaderboardRow
	if err := r.db.GetDB().SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to build leaderboard: %w", err)
	}

	entries := make([]models.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.LeaderboardEntry{
			Profile:       row.Profile,
			TotalDistance: row.TotalDistance,
			RideCount:     row.RideCount,
		})
	}
	return entries, nil
}
