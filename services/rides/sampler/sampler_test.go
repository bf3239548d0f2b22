package sampler

import (
	"context"
	"testing"
	"time"

	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fix(lat, lng float64) Position {
	return Position{
		Point:      models.RoutePoint{Lat: lat, Lng: lng, Timestamp: time.Now().UnixMilli()},
		Accuracy:   5,
		CapturedAt: time.Now(),
	}
}

func TestWatch_DeliversPushedFixes(t *testing.T) {
	feed := NewFeed()
	w, err := feed.Watch(Options{HighAccuracy: true, Timeout: time.Second})
	require.NoError(t, err)
	defer w.Clear()

	feed.Push(fix(-6.2, 106.8))
	feed.Push(fix(-6.21, 106.81))

	first := <-w.Updates()
	second := <-w.Updates()
	assert.Equal(t, -6.2, first.Point.Lat)
	assert.Equal(t, -6.21, second.Point.Lat)
}

func TestWatch_RejectsStaleFix(t *testing.T) {
	feed := NewFeed()
	w, err := feed.Watch(Options{Timeout: time.Second})
	require.NoError(t, err)
	defer w.Clear()

	stale := fix(-6.2, 106.8)
	stale.CapturedAt = time.Now().Add(-time.Minute)
	feed.Push(stale)
	feed.Push(fix(-6.3, 106.9))

	got := <-w.Updates()
	assert.Equal(t, -6.3, got.Point.Lat, "cached fix should be dropped, fresh fix delivered")
}

func TestWatch_TerminatesOnFirstError(t *testing.T) {
	feed := NewFeed()
	w, err := feed.Watch(Options{Timeout: time.Second})
	require.NoError(t, err)

	feed.Fail(ErrCodePermissionDenied, "location access denied")

	werr := <-w.Errors()
	assert.Equal(t, ErrCodePermissionDenied, werr.Code)

	// The watch is dead: the update channel closes and later fixes go nowhere.
	_, ok := <-w.Updates()
	assert.False(t, ok)
	assert.Equal(t, 0, feed.Active())
}

func TestWatch_TimesOutWithoutFix(t *testing.T) {
	feed := NewFeed()
	w, err := feed.Watch(Options{Timeout: 20 * time.Millisecond})
	require.NoError(t, err)

	select {
	case werr := <-w.Errors():
		assert.Equal(t, ErrCodeTimeout, werr.Code)
	case <-time.After(time.Second):
		t.Fatal("expected timeout error")
	}
}

func TestWatch_FixResetsAcquisitionWindow(t *testing.T) {
	feed := NewFeed()
	w, err := feed.Watch(Options{Timeout: 80 * time.Millisecond})
	require.NoError(t, err)
	defer w.Clear()

	// Keep feeding inside the window; the watch must stay alive past the
	// original deadline.
	for i := 0; i < 4; i++ {
		time.Sleep(40 * time.Millisecond)
		feed.Push(fix(-6.2, 106.8))
	}

	select {
	case werr := <-w.Errors():
		t.Fatalf("watch terminated unexpectedly: %v", werr)
	default:
	}
}

func TestClear_StopsDelivery(t *testing.T) {
	feed := NewFeed()
	w, err := feed.Watch(Options{Timeout: time.Second})
	require.NoError(t, err)

	w.Clear()
	w.Clear()
	feed.Push(fix(-6.2, 106.8))

	_, ok := <-w.Updates()
	assert.False(t, ok)
	assert.Equal(t, 0, feed.Active())
}

func TestCurrentPosition_ResolvesFirstFix(t *testing.T) {
	feed := NewFeed()

	go func() {
		time.Sleep(10 * time.Millisecond)
		feed.Push(fix(-6.2, 106.8))
	}()

	pos, err := feed.CurrentPosition(context.Background(), Options{Timeout: time.Second})
	require.NoError(t, err)
	assert.Equal(t, -6.2, pos.Point.Lat)
	assert.Equal(t, 0, feed.Active())
}

func TestCurrentPosition_PropagatesSourceError(t *testing.T) {
	feed := NewFeed()

	go func() {
		time.Sleep(10 * time.Millisecond)
		feed.Fail(ErrCodePositionUnavailable, "no gps signal")
	}()

	_, err := feed.CurrentPosition(context.Background(), Options{Timeout: time.Second})
	var werr WatchError
	require.ErrorAs(t, err, &werr)
	assert.Equal(t, ErrCodePositionUnavailable, werr.Code)
}
