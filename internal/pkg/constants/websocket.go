package constants

// WebSocket events on the tracking feed
const (
	// Inbound from the device
	EventPositionFix   = "position_fix"
	EventPositionError = "position_error"

	// Outbound to the device
	EventMetricsUpdate = "metrics_update"
	EventError         = "error"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
)
