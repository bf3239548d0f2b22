package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nomadbikers/ridetrack/internal/pkg/database"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	"github.com/nomadbikers/ridetrack/services/chat"
)

// ChatRepo implements chat message persistence against the remote store
type ChatRepo struct {
	cfg *models.Config
	db  *database.PostgresClient
}

// NewChatRepo creates a new chat repository
func NewChatRepo(cfg *models.Config, db *database.PostgresClient) chat.ChatRepo {
	return &ChatRepo{
		cfg: cfg,
		db:  db,
	}
}

// chatRow carries the message columns plus the sender profile join.
type chatRow struct {
	models.ChatMessage
	SenderID        *uuid.UUID   `db:"sender_id"`
	SenderName      *string      `db:"sender_name"`
	SenderAge       *int         `db:"sender_age"`
	SenderAvatarURL *string      `db:"sender_avatar_url"`
	SenderRole      *models.Role `db:"sender_role"`
}

func (r chatRow) toModel() models.ChatMessage {
	message := r.ChatMessage
	if r.SenderID != nil {
		message.SenderProfile = &models.Profile{
			ID:        *r.SenderID,
			AvatarURL: r.SenderAvatarURL,
		}
		if r.SenderName != nil {
			message.SenderProfile.Name = *r.SenderName
		}
		if r.SenderAge != nil {
			message.SenderProfile.Age = *r.SenderAge
		}
		if r.SenderRole != nil {
			message.SenderProfile.Role = *r.SenderRole
		}
	}
	return message
}

// CreateMessage inserts a chat message.
func (r *ChatRepo) CreateMessage(ctx context.Context, message models.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (id, text, image_url, author_id, timestamp)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.GetDB().ExecContext(ctx, query,
		message.ID, message.Text, message.ImageURL, message.AuthorID, message.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to create chat message: %w", err)
	}
	return nil
}

// ListMessages returns all messages oldest first with the sender profile
// denormalized at read time. Messages from deleted profiles survive with a
// nil sender.
func (r *ChatRepo) ListMessages(ctx context.Context) ([]models.ChatMessage, error) {
	query := `
		SELECT m.id, m.text, m.image_url, m.author_id, m.timestamp,
		       p.id AS sender_id, p.name AS sender_name, p.age AS sender_age,
		       p.avatar_url AS sender_avatar_url, p.role AS sender_role
		FROM chat_messages m
		LEFT JOIN profiles p ON p.id = m.author_id
		ORDER BY m.timestamp ASC`

	var rows []chatRow
	if err := r.db.GetDB().SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}

	items := make([]models.ChatMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel())
	}
	return items, nil
}
