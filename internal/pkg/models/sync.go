package models

// ChangeType discriminates change-notification events per collection.
type ChangeType string

const (
	ChangeInsert ChangeType = "insert"
	ChangeUpdate ChangeType = "update"
	ChangeDelete ChangeType = "delete"
)

// ChangeEvent notifies subscribers that a row in a remote collection changed.
// Consumers treat it as a coarse invalidation signal and refetch the whole
// collection rather than patching incrementally.
type ChangeEvent struct {
	Type  ChangeType `json:"type"`
	Table string     `json:"table"`
}

// RideCompletedEvent is published when a recording session finishes and the
// completed ride has been persisted.
type RideCompletedEvent struct {
	RideID     string  `json:"ride_id"`
	RecorderID string  `json:"recorder_id"`
	Distance   float64 `json:"distance"` // km
	Duration   int64   `json:"duration"` // millis
}
