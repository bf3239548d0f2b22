package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nomadbikers/ridetrack/internal/pkg/constants"
	"github.com/nomadbikers/ridetrack/internal/pkg/logger"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	natspkg "github.com/nomadbikers/ridetrack/internal/pkg/nats"
	"github.com/nomadbikers/ridetrack/internal/pkg/storage"
	"github.com/nomadbikers/ridetrack/internal/pkg/syncstore"
	"github.com/nomadbikers/ridetrack/services/chat"
)

// maxImageBytes bounds chat image uploads.
const maxImageBytes = 5 << 20

// ChatUC implements the group chat business logic
type ChatUC struct {
	cfg    *models.Config
	repo   chat.ChatRepo
	gw     chat.ChatGW
	assets storage.AssetStore
	coord  *syncstore.Coordinator[models.ChatMessage]
}

// NewChatUC creates a new chat usecase
func NewChatUC(
	cfg *models.Config,
	repo chat.ChatRepo,
	gw chat.ChatGW,
	assets storage.AssetStore,
	cacheStore syncstore.Cache,
	natsClient *natspkg.Client,
	gate syncstore.Gate,
) *ChatUC {
	uc := &ChatUC{
		cfg:    cfg,
		repo:   repo,
		gw:     gw,
		assets: assets,
	}
	uc.coord = syncstore.New(
		constants.CollectionChat,
		constants.KeyChatCache,
		constants.SubjectChatChanged,
		cacheStore,
		repo.ListMessages,
		natsClient,
		gate,
	)
	return uc
}

// SendTextMessage posts a text message to the group chat. Gated while
// offline; never queued.
func (uc *ChatUC) SendTextMessage(ctx context.Context, authorID, text string) (models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ChatMessage{}, fmt.Errorf("message text is empty")
	}
	author, err := uuid.Parse(authorID)
	if err != nil {
		return models.ChatMessage{}, fmt.Errorf("invalid author id: %w", err)
	}

	message := models.ChatMessage{
		ID:        uuid.New(),
		Text:      &text,
		AuthorID:  author,
		Timestamp: models.Now(),
	}
	return uc.persist(ctx, message)
}

// SendImageMessage uploads the image to the asset store, then posts a message
// referencing its public URL. The upload itself is not gated: only the
// message write goes through the remote store.
func (uc *ChatUC) SendImageMessage(ctx context.Context, authorID, filename string, image io.Reader) (models.ChatMessage, error) {
	author, err := uuid.Parse(authorID)
	if err != nil {
		return models.ChatMessage{}, fmt.Errorf("invalid author id: %w", err)
	}

	data, err := io.ReadAll(io.LimitReader(image, maxImageBytes+1))
	if err != nil {
		return models.ChatMessage{}, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) == 0 {
		return models.ChatMessage{}, fmt.Errorf("image is empty")
	}
	if len(data) > maxImageBytes {
		return models.ChatMessage{}, fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}

	id := uuid.New()
	path := id.String() + strings.ToLower(filepath.Ext(filename))
	if err := uc.assets.UploadBlob(constants.BucketChatImages, path, data); err != nil {
		return models.ChatMessage{}, fmt.Errorf("failed to upload chat image: %w", err)
	}

	url := uc.assets.GetPublicURL(constants.BucketChatImages, path)
	message := models.ChatMessage{
		ID:        id,
		ImageURL:  &url,
		AuthorID:  author,
		Timestamp: models.Now(),
	}
	return uc.persist(ctx, message)
}

func (uc *ChatUC) persist(ctx context.Context, message models.ChatMessage) (models.ChatMessage, error) {
	if !message.HasContent() {
		return models.ChatMessage{}, fmt.Errorf("message has no content")
	}

	err := uc.coord.Mutate(ctx, func(ctx context.Context) error {
		return uc.repo.CreateMessage(ctx, message)
	})
	if err != nil {
		return models.ChatMessage{}, err
	}

	if err := uc.gw.PublishChange(models.ChangeInsert); err != nil {
		logger.Warn("Failed to publish chat change event", logger.Err(err))
	}
	return message, nil
}

// LoadCachedMessages renders the last-known snapshot without touching the
// network.
func (uc *ChatUC) LoadCachedMessages(ctx context.Context) []models.ChatMessage {
	return uc.coord.LoadCached(ctx)
}

// ListMessages returns the freshest view available, oldest message first.
// Refresh failures fall back to the cached snapshot.
func (uc *ChatUC) ListMessages(ctx context.Context) ([]models.ChatMessage, error) {
	items, err := uc.coord.Refresh(ctx)
	if err != nil {
		logger.Warn("Chat refresh failed, serving cached snapshot", logger.Err(err))
		items = uc.coord.LoadCached(ctx)
	}
	return items, nil
}

// SubscribeToChanges delivers the refreshed message list on every remote
// change notification.
func (uc *ChatUC) SubscribeToChanges(onChange func([]models.ChatMessage)) (func(), error) {
	return uc.coord.SubscribeToChanges(onChange)
}
