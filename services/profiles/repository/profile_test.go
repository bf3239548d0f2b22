package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/nomadbikers/ridetrack/internal/pkg/database"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	"github.com/nomadbikers/ridetrack/services/profiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProfileRepo(t *testing.T) (profiles.ProfileRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewProfileRepo(&models.Config{}, database.NewPostgresClientFromDB(sqlxDB))
	return repo, mock
}

func profileRows(items ...models.Profile) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "name", "age", "avatar_url", "role"})
	for _, p := range items {
		rows.AddRow(p.ID, p.Name, p.Age, p.AvatarURL, p.Role)
	}
	return rows
}

func TestCreateProfile(t *testing.T) {
	repo, mock := setupProfileRepo(t)

	profile := models.Profile{
		ID:   uuid.New(),
		Name: "Sari",
		Age:  34,
		Role: models.RoleLeader,
	}

	mock.ExpectExec("INSERT INTO profiles").
		WithArgs(profile.ID, profile.Name, profile.Age, profile.AvatarURL, profile.Role).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateProfile(context.Background(), profile))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfileByID(t *testing.T) {
	repo, mock := setupProfileRepo(t)

	want := models.Profile{ID: uuid.New(), Name: "Budi", Age: 41, Role: models.RoleMember}

	mock.ExpectQuery("SELECT (.+) FROM profiles WHERE id =").
		WithArgs(want.ID).
		WillReturnRows(profileRows(want))

	got, err := repo.GetProfileByID(context.Background(), want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProfileByID_NotFound(t *testing.T) {
	repo, mock := setupProfileRepo(t)

	id := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM profiles WHERE id =").
		WithArgs(id).
		WillReturnRows(profileRows())

	_, err := repo.GetProfileByID(context.Background(), id)
	assert.ErrorIs(t, err, profiles.ErrProfileNotFound)
}

func TestListProfiles(t *testing.T) {
	repo, mock := setupProfileRepo(t)

	leader := models.Profile{ID: uuid.New(), Name: "Sari", Age: 34, Role: models.RoleLeader}
	member := models.Profile{ID: uuid.New(), Name: "Budi", Age: 41, Role: models.RoleMember}

	mock.ExpectQuery("SELECT (.+) FROM profiles ORDER BY role = 'leader' DESC").
		WillReturnRows(profileRows(leader, member))

	got, err := repo.ListProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, leader.ID, got[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAvatar(t *testing.T) {
	repo, mock := setupProfileRepo(t)

	id := uuid.New()
	url := "http://localhost:9999/assets/avatars/" + id.String() + ".png"
	mock.ExpectExec("UPDATE profiles SET avatar_url =").
		WithArgs(id, url).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateAvatar(context.Background(), id, url))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAvatar_NotFound(t *testing.T) {
	repo, mock := setupProfileRepo(t)

	id := uuid.New()
	mock.ExpectExec("UPDATE profiles SET avatar_url =").
		WithArgs(id, "http://localhost:9999/assets/avatars/x.png").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateAvatar(context.Background(), id, "http://localhost:9999/assets/avatars/x.png")
	assert.ErrorIs(t, err, profiles.ErrProfileNotFound)
}

func TestCountProfiles(t *testing.T) {
	repo, mock := setupProfileRepo(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM profiles").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.CountProfiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestLeaderboard(t *testing.T) {
	repo, mock := setupProfileRepo(t)

	sari := models.Profile{ID: uuid.New(), Name: "Sari", Age: 34, Role: models.RoleLeader}
	budi := models.Profile{ID: uuid.New(), Name: "Budi", Age: 41, Role: models.RoleMember}

	rows := sqlmock.NewRows([]string{"id", "name", "age", "avatar_url", "role", "total_distance", "ride_count"}).
		AddRow(sari.ID, sari.Name, sari.Age, sari.AvatarURL, sari.Role, 128.4, 6).
		AddRow(budi.ID, budi.Name, budi.Age, budi.AvatarURL, budi.Role, 0.0, 0)

	mock.ExpectQuery("SELECT (.+) FROM profiles p").
		WillReturnRows(rows)

	got, err := repo.Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, sari.ID, got[0].Profile.ID)
	assert.Equal(t, 128.4, got[0].TotalDistance)
	assert.Equal(t, 6, got[0].RideCount)
	assert.Equal(t, 0.0, got[1].TotalDistance)
	assert.NoError(t, mock.ExpectationsWereMet())
}
