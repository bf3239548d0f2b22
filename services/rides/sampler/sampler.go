// Package sampler acquires position fixes from a device positioning source.
// A Feed is the bridge between the transport that delivers raw fixes (the
// websocket handler) and the recording session consuming them: fixes are
// pushed in, validated against the watch options, and fanned out on a
// channel. A watch terminates on its first error; the consumer must open a
// fresh one to keep sampling.
package sampler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/nomadbikers/ridetrack/internal/pkg/models"
)

// ErrorCode classifies why a watch failed.
type ErrorCode string

const (
	// ErrCodePermissionDenied means the member refused location access.
	ErrCodePermissionDenied ErrorCode = "permission_denied"
	// ErrCodePositionUnavailable means the source could not produce a fix.
	ErrCodePositionUnavailable ErrorCode = "position_unavailable"
	// ErrCodeTimeout means no fix arrived within the acquisition window.
	ErrCodeTimeout ErrorCode = "timeout"
	// ErrCodeUnknown covers everything else.
	ErrCodeUnknown ErrorCode = "unknown"
)

// ErrWatchClosed is returned when pushing into a terminated watch.
var ErrWatchClosed = errors.New("watch closed")

// Position is a single location fix.
type Position struct {
	Point      models.RoutePoint
	Accuracy   float64
	CapturedAt time.Time
}

// WatchError terminates a watch.
type WatchError struct {
	Code    ErrorCode
	Message string
}

func (e WatchError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Options configure a watch.
type Options struct {
	// HighAccuracy requests the precise positioning mode.
	HighAccuracy bool
	// Timeout bounds how long the watch waits for each fix before failing
	// with ErrCodeTimeout.
	Timeout time.Duration
	// MaxAge is the oldest acceptable fix. Zero means only fixes captured
	// after the watch opened are delivered; cached fixes are dropped.
	MaxAge time.Duration
}

// Watcher is a live position subscription.
type Watcher interface {
	// Updates delivers accepted fixes. The channel is closed when the watch
	// terminates.
	Updates() <-chan Position
	// Errors delivers the terminating error, if any. At most one error is
	// ever sent; the watch is dead afterwards.
	Errors() <-chan WatchError
	// Clear stops the watch. After Clear returns no further fix or error is
	// delivered. Safe to call more than once.
	Clear()
}

// Sampler opens position watches.
type Sampler interface {
	// Watch opens a continuous subscription.
	Watch(opts Options) (Watcher, error)
	// CurrentPosition resolves a single fix or fails with a WatchError.
	CurrentPosition(ctx context.Context, opts Options) (Position, error)
}

// Feed is a push-driven Sampler. The transport feeding it calls Push for
// each raw fix and Fail when the source reports a fault; every open watch
// sees the same stream.
type Feed struct {
	mu      sync.Mutex
	watches map[int]*watch
	nextID  int
}

// NewFeed creates an empty feed with no open watches.
func NewFeed() *Feed {
	return &Feed{watches: make(map[int]*watch)}
}

// Watch opens a subscription against the feed.
func (f *Feed) Watch(opts Options) (Watcher, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	w := &watch{
		feed:     f,
		opts:     opts,
		openedAt: time.Now(),
		updates:  make(chan Position, 16),
		errs:     make(chan WatchError, 1),
	}
	w.id = f.nextID
	f.nextID++
	f.watches[w.id] = w

	if opts.Timeout > 0 {
		w.timer = time.AfterFunc(opts.Timeout, w.timeout)
	}
	return w, nil
}

// CurrentPosition opens a short-lived watch and resolves its first fix.
func (f *Feed) CurrentPosition(ctx context.Context, opts Options) (Position, error) {
	w, err := f.Watch(opts)
	if err != nil {
		return Position{}, err
	}
	defer w.Clear()

	select {
	case pos, ok := <-w.Updates():
		if !ok {
			return Position{}, WatchError{Code: ErrCodeUnknown, Message: "watch closed before first fix"}
		}
		return pos, nil
	case werr := <-w.Errors():
		return Position{}, werr
	case <-ctx.Done():
		return Position{}, WatchError{Code: ErrCodeTimeout, Message: ctx.Err().Error()}
	}
}

// Push delivers a raw fix to every open watch. Watches individually reject
// fixes older than their MaxAge window.
func (f *Feed) Push(pos Position) {
	if pos.CapturedAt.IsZero() {
		pos.CapturedAt = time.Now()
	}
	if pos.Point.Timestamp == 0 {
		pos.Point.Timestamp = pos.CapturedAt.UnixMilli()
	}

	f.mu.Lock()
	watches := make([]*watch, 0, len(f.watches))
	for _, w := range f.watches {
		watches = append(watches, w)
	}
	f.mu.Unlock()

	for _, w := range watches {
		w.deliver(pos)
	}
}

// Fail terminates every open watch with the given error.
func (f *Feed) Fail(code ErrorCode, message string) {
	f.mu.Lock()
	watches := make([]*watch, 0, len(f.watches))
	for _, w := range f.watches {
		watches = append(watches, w)
	}
	f.mu.Unlock()

	for _, w := range watches {
		w.fail(WatchError{Code: code, Message: message})
	}
}

// Active reports how many watches are open.
func (f *Feed) Active() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.watches)
}

func (f *Feed) remove(id int) {
	f.mu.Lock()
	delete(f.watches, id)
	f.mu.Unlock()
}

type watch struct {
	feed     *Feed
	id       int
	opts     Options
	openedAt time.Time

	mu      sync.Mutex
	closed  bool
	timer   *time.Timer
	updates chan Position
	errs    chan WatchError
}

func (w *watch) Updates() <-chan Position  { return w.updates }
func (w *watch) Errors() <-chan WatchError { return w.errs }

func (w *watch) deliver(pos Position) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	// A fix captured before the MaxAge window is a stale cached reading.
	if pos.CapturedAt.Before(w.openedAt.Add(-w.opts.MaxAge)) {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
		if w.opts.Timeout > 0 {
			w.timer = time.AfterFunc(w.opts.Timeout, w.timeout)
		}
	}
	select {
	case w.updates <- pos:
	default:
		// Consumer is not draining; drop the fix rather than block the feed.
	}
}

func (w *watch) fail(err WatchError) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.errs <- err
	close(w.updates)
	w.mu.Unlock()

	w.feed.remove(w.id)
}

func (w *watch) timeout() {
	w.fail(WatchError{Code: ErrCodeTimeout, Message: "no position fix within acquisition window"})
}

// Clear stops the watch and detaches it from the feed.
func (w *watch) Clear() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.updates)
	w.mu.Unlock()

	w.feed.remove(w.id)
}
