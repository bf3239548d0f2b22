package constants

// NATS Subjects
const (
	// Per-collection change notifications (coarse invalidation)
	SubjectRidesChanged    = "rides.changed"
	SubjectChatChanged     = "chat_messages.changed"
	SubjectProfilesChanged = "profiles.changed"

	// Ride lifecycle events
	SubjectRideCompleted = "ride.completed"
)

// Collection names used by the sync layer
const (
	CollectionRides    = "rides"
	CollectionChat     = "chat_messages"
	CollectionProfiles = "profiles"
)
