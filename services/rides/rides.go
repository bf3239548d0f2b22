package rides

import "errors"

// SessionState is the recording lifecycle state of the ride session.
type SessionState string

const (
	// SessionIdle means no ride is selected for recording.
	SessionIdle SessionState = "idle"
	// SessionArmed means a ride is selected but recording has not started.
	SessionArmed SessionState = "armed"
	// SessionRecording means a recording is in progress.
	SessionRecording SessionState = "recording"
	// SessionFinished means the recording completed; the ride is terminal.
	SessionFinished SessionState = "finished"
)

var (
	// ErrNoRideSelected is returned when recording is started with no armed ride.
	ErrNoRideSelected = errors.New("no ride selected for recording")
	// ErrRideFinished is returned when a finished ride is re-armed; a finished
	// ride cannot be re-recorded.
	ErrRideFinished = errors.New("ride already finished")
	// ErrNotRecording is returned when stop is called outside a recording.
	ErrNotRecording = errors.New("no recording in progress")
	// ErrRecordingActive is returned when the session is re-armed mid-recording.
	ErrRecordingActive = errors.New("recording in progress")
	// ErrRideNotFound is returned when the requested ride does not exist.
	ErrRideNotFound = errors.New("ride not found")
)
