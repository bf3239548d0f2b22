// Package prefs holds app-local preferences (currently the display theme).
// Preferences live in the local cache only; they are device state, never
// synced through the remote store. The store is process-wide configuration
// with explicit init and a read/subscribe surface instead of ambient global
// mutation.
package prefs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nomadbikers/ridetrack/internal/pkg/constants"
)

// Theme is the display theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Cache is the durable device-local key-value store.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

// Store serves per-member theme preferences.
type Store struct {
	cache        Cache
	defaultTheme Theme

	mu          sync.RWMutex
	subscribers map[int]func(userID string, theme Theme)
	nextSubID   int
}

// NewStore creates a preference store. defaultTheme applies when no
// preference has been persisted.
func NewStore(cache Cache, defaultTheme Theme) *Store {
	if defaultTheme != ThemeLight && defaultTheme != ThemeDark {
		defaultTheme = ThemeLight
	}
	return &Store{
		cache:        cache,
		defaultTheme: defaultTheme,
		subscribers:  make(map[int]func(string, Theme)),
	}
}

// Theme returns the member's persisted theme, falling back to the default
// for missing or invalid values.
func (s *Store) Theme(ctx context.Context, userID string) Theme {
	raw, err := s.cache.Get(ctx, fmt.Sprintf(constants.KeyThemePref, userID))
	if err != nil {
		return s.defaultTheme
	}
	switch Theme(raw) {
	case ThemeLight, ThemeDark:
		return Theme(raw)
	default:
		return s.defaultTheme
	}
}

// SetTheme persists the preference and notifies subscribers.
func (s *Store) SetTheme(ctx context.Context, userID string, theme Theme) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("invalid theme %q", theme)
	}
	if err := s.cache.Set(ctx, fmt.Sprintf(constants.KeyThemePref, userID), string(theme), 0); err != nil {
		return fmt.Errorf("failed to persist theme preference: %w", err)
	}

	s.mu.RLock()
	subs := make([]func(string, Theme), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(userID, theme)
	}
	return nil
}

// Subscribe registers a preference-change callback and returns an
// unsubscribe function.
func (s *Store) Subscribe(fn func(userID string, theme Theme)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}
