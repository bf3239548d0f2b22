package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one message in the group chat. At least one of Text or
// ImageURL must be present. SenderProfile is a denormalized join of the
// author's profile resolved at read time; it is never written back.
type ChatMessage struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Text          *string   `json:"text,omitempty" db:"text"`
	ImageURL      *string   `json:"image_url,omitempty" db:"image_url"`
	AuthorID      uuid.UUID `json:"author_id" db:"author_id"`
	Timestamp     time.Time `json:"timestamp" db:"timestamp"`
	SenderProfile *Profile  `json:"sender_profile,omitempty" db:"-"`
}

// HasContent reports whether the message carries text or an image.
func (m *ChatMessage) HasContent() bool {
	return (m.Text != nil && *m.Text != "") || (m.ImageURL != nil && *m.ImageURL != "")
}
