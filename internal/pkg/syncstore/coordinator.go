// Package syncstore reconciles the on-device cache with the remote store.
//
// Each collection (rides, chat messages, profiles) gets one Coordinator. The
// cache holds the last-known materialized view of the collection as a single
// serialized snapshot, replaced wholesale on every successful refresh; the
// remote store stays authoritative. Change notifications are treated as
// coarse invalidation: any event triggers a full refetch rather than an
// incremental patch.
package syncstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nomadbikers/ridetrack/internal/pkg/logger"
	natspkg "github.com/nomadbikers/ridetrack/internal/pkg/nats"
)

// ErrOffline is returned when a mutation is attempted while the connectivity
// monitor reports the remote store as unreachable. Mutations are gated, not
// queued: the caller must re-attempt manually.
var ErrOffline = errors.New("remote store unavailable while offline")

// Cache is the durable on-device key-value store holding collection
// snapshots.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// Gate reports whether network-dependent operations may be attempted.
type Gate interface {
	Online() bool
}

// FetchFunc fetches the full collection from the remote store in its natural
// display order.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Coordinator reconciles one collection between the local cache and the
// remote store.
type Coordinator[T any] struct {
	collection string
	cacheKey   string
	subject    string
	cache      Cache
	fetch      FetchFunc[T]
	client     *natspkg.Client
	gate       Gate
}

// New creates a coordinator for one collection. subject is the NATS subject
// carrying the collection's change notifications.
func New[T any](collection, cacheKey, subject string, cache Cache, fetch FetchFunc[T], client *natspkg.Client, gate Gate) *Coordinator[T] {
	return &Coordinator[T]{
		collection: collection,
		cacheKey:   cacheKey,
		subject:    subject,
		cache:      cache,
		fetch:      fetch,
		client:     client,
		gate:       gate,
	}
}

// LoadCached returns the last persisted snapshot without touching the
// network. It never fails: a missing or unreadable snapshot yields an empty
// collection so the caller can always render immediately.
func (c *Coordinator[T]) LoadCached(ctx context.Context) []T {
	raw, err := c.cache.Get(ctx, c.cacheKey)
	if err != nil {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logger.Warn("Discarding unreadable cache snapshot",
			logger.String("collection", c.collection),
			logger.Err(err))
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// Refresh fetches the collection from the remote store and atomically
// replaces the cached snapshot with the result. A failed fetch leaves the
// previous snapshot intact. The cache write itself is best effort: the fresh
// result is still returned when only the write fails.
func (c *Coordinator[T]) Refresh(ctx context.Context) ([]T, error) {
	items, err := c.fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh %s: %w", c.collection, err)
	}
	if items == nil {
		items = []T{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s snapshot: %w", c.collection, err)
	}
	if err := c.cache.Set(ctx, c.cacheKey, raw, 0); err != nil {
		logger.Warn("Failed to persist cache snapshot",
			logger.String("collection", c.collection),
			logger.Err(err))
	}

	return items, nil
}

// SubscribeToChanges registers for the collection's change notifications. Any
// insert/update/delete event triggers an unconditional Refresh; onChange is
// invoked with the refreshed set. Refresh failures are logged and the cached
// snapshot stays untouched. The returned stop function cancels the
// subscription.
func (c *Coordinator[T]) SubscribeToChanges(onChange func([]T)) (func(), error) {
	consumer, err := natspkg.NewConsumer(c.client, c.subject, "", func(message []byte) error {
		return c.handleChange(message, onChange)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s changes: %w", c.collection, err)
	}

	return consumer.Stop, nil
}

func (c *Coordinator[T]) handleChange(message []byte, onChange func([]T)) error {
	// The event payload only matters for diagnostics; any change triggers a
	// full refetch.
	logger.Debug("Change notification received",
		logger.String("collection", c.collection),
		logger.String("event", string(message)))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	items, err := c.Refresh(ctx)
	if err != nil {
		return err
	}
	if onChange != nil {
		onChange(items)
	}
	return nil
}

// Mutate executes a remote write. While offline the write is rejected with
// ErrOffline rather than queued. The cache is never mutated optimistically;
// the change subscription refreshes it once the remote store confirms.
func (c *Coordinator[T]) Mutate(ctx context.Context, op func(ctx context.Context) error) error {
	if c.gate != nil && !c.gate.Online() {
		return ErrOffline
	}
	if err := op(ctx); err != nil {
		return fmt.Errorf("failed to mutate %s: %w", c.collection, err)
	}
	return nil
}
