package constants

// Asset buckets
const (
	BucketChatImages = "chat-images"
	BucketAvatars    = "avatars"
)
