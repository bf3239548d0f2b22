package constants

// Redis key formats
const (
	// Cached collection snapshots, replaced wholesale on each refresh
	KeyRidesCache    = "cache:rides"
	KeyChatCache     = "cache:chat_messages"
	KeyProfilesCache = "cache:profiles"

	// Pending-write queue for rides completed while offline
	KeyPendingRides = "pending:rides" // hash keyed by ride id

	// App-local preference store
	KeyThemePref = "prefs:theme:%s" // Format: prefs:theme:{user_id}

	// Tile precache manifests per ride
	KeyRideTiles = "tiles:ride:%s" // Format: tiles:ride:{ride_id}
)
