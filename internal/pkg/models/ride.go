package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// RoutePoint is a single GPS fix collected during an active recording.
// Points are immutable once appended; ordering is append order.
type RoutePoint struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Timestamp int64   `json:"timestamp"` // milliseconds since epoch
}

// Ride represents a planned or recorded trip.
//
// Remote-only attributes (RecorderID, precomputed Distance/Duration) are
// optional pointers so the same shape serves both the locally cached and the
// remote representation. A ride with EndTime set is terminal: only IsFavorite
// may change afterwards.
type Ride struct {
	ID           uuid.UUID    `json:"id" db:"id"`
	Date         time.Time    `json:"date" db:"date"`
	MeetingPoint string       `json:"meeting_point" db:"meeting_point"`
	Destination  string       `json:"destination" db:"destination"`
	RoutePoints  []RoutePoint `json:"route_points" db:"-"`
	StartTime    *int64       `json:"start_time,omitempty" db:"start_time"` // millis
	EndTime      *int64       `json:"end_time,omitempty" db:"end_time"`     // millis
	IsFavorite   bool         `json:"is_favorite" db:"is_favorite"`
	RecorderID   *uuid.UUID   `json:"recorder_id,omitempty" db:"recorder_id"`
	Distance     *float64     `json:"distance,omitempty" db:"distance"` // km, authoritative once set
	Duration     *int64       `json:"duration,omitempty" db:"duration"` // millis, authoritative once set
}

// Finished reports whether the ride's recording has completed.
func (r *Ride) Finished() bool {
	return r.EndTime != nil
}

// Started reports whether the ride's recording has begun.
func (r *Ride) Started() bool {
	return r.StartTime != nil
}

// SortRidesForDisplay orders rides for listing: favorited rides first, then
// descending by date within each group. The comparator is strict so the
// order is stable regardless of how the slice was assembled.
func SortRidesForDisplay(rides []Ride) {
	sort.SliceStable(rides, func(i, j int) bool {
		if rides[i].IsFavorite != rides[j].IsFavorite {
			return rides[i].IsFavorite
		}
		return rides[i].Date.After(rides[j].Date)
	})
}
