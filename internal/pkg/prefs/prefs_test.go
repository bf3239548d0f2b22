package prefs

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/nomadbikers/ridetrack/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *Store {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewStore(&database.RedisClient{Client: client}, ThemeLight)
}

func TestTheme_DefaultWhenUnset(t *testing.T) {
	store := setupStore(t)

	assert.Equal(t, ThemeLight, store.Theme(context.Background(), "user-1"))
}

func TestSetTheme_PersistsAndNotifies(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	var gotUser string
	var gotTheme Theme
	unsubscribe := store.Subscribe(func(userID string, theme Theme) {
		gotUser = userID
		gotTheme = theme
	})
	defer unsubscribe()

	require.NoError(t, store.SetTheme(ctx, "user-1", ThemeDark))

	assert.Equal(t, ThemeDark, store.Theme(ctx, "user-1"))
	assert.Equal(t, "user-1", gotUser)
	assert.Equal(t, ThemeDark, gotTheme)

	// Other members keep the default.
	assert.Equal(t, ThemeLight, store.Theme(ctx, "user-2"))
}

func TestSetTheme_RejectsInvalidValue(t *testing.T) {
	store := setupStore(t)

	assert.Error(t, store.SetTheme(context.Background(), "user-1", Theme("solarized")))
}
