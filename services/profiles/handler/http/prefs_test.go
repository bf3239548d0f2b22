package http

import (
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/nomadbikers/ridetrack/internal/pkg/database"
	"github.com/nomadbikers/ridetrack/internal/pkg/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPrefsHandler(t *testing.T) *PrefsHandler {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cache := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	return NewPrefsHandler(prefs.NewStore(cache, prefs.ThemeLight))
}

func TestGetTheme_Default(t *testing.T) {
	handler := setupPrefsHandler(t)

	c, recorder := newProfileContext(t, http.MethodGet, "/preferences/theme", nil, uuid.New().String())

	require.NoError(t, handler.GetTheme(c))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "light")
}

func TestSetTheme(t *testing.T) {
	handler := setupPrefsHandler(t)
	memberID := uuid.New().String()

	c, recorder := newProfileContext(t, http.MethodPut, "/preferences/theme",
		map[string]string{"theme": "dark"}, memberID)
	require.NoError(t, handler.SetTheme(c))
	assert.Equal(t, http.StatusOK, recorder.Code)

	c, recorder = newProfileContext(t, http.MethodGet, "/preferences/theme", nil, memberID)
	require.NoError(t, handler.GetTheme(c))
	assert.Contains(t, recorder.Body.String(), "dark")
}

func TestSetTheme_RejectsInvalidValue(t *testing.T) {
	handler := setupPrefsHandler(t)

	c, recorder := newProfileContext(t, http.MethodPut, "/preferences/theme",
		map[string]string{"theme": "solarized"}, uuid.New().String())

	require.NoError(t, handler.SetTheme(c))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
