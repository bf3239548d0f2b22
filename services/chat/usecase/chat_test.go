package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/nomadbikers/ridetrack/internal/pkg/database"
	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	"github.com/nomadbikers/ridetrack/internal/pkg/storage"
	"github.com/nomadbikers/ridetrack/internal/pkg/syncstore"
	"github.com/nomadbikers/ridetrack/services/chat/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticGate bool

func (g staticGate) Online() bool { return bool(g) }

type chatFixture struct {
	uc   *ChatUC
	repo *mocks.MockChatRepo
	gw   *mocks.MockChatGW
}

func setupChatUC(t *testing.T, online bool) *chatFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	snapshots := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	assets, err := storage.NewDiskStore(models.AssetsConfig{
		Root:    t.TempDir(),
		BaseURL: "http://localhost:9999/assets",
	})
	require.NoError(t, err)

	f := &chatFixture{
		repo: mocks.NewMockChatRepo(ctrl),
		gw:   mocks.NewMockChatGW(ctrl),
	}
	f.uc = NewChatUC(&models.Config{}, f.repo, f.gw, assets, snapshots, nil, staticGate(online))
	return f
}

func TestSendTextMessage(t *testing.T) {
	f := setupChatUC(t, true)

	author := uuid.New()
	f.repo.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishChange(models.ChangeInsert).Return(nil)

	message, err := f.uc.SendTextMessage(context.Background(), author.String(), "  see you at the meeting point  ")
	require.NoError(t, err)
	require.NotNil(t, message.Text)
	assert.Equal(t, "see you at the meeting point", *message.Text)
	assert.Equal(t, author, message.AuthorID)
}

func TestSendTextMessage_RejectsEmpty(t *testing.T) {
	f := setupChatUC(t, true)

	_, err := f.uc.SendTextMessage(context.Background(), uuid.New().String(), "   ")
	assert.Error(t, err)
}

func TestSendTextMessage_OfflineGated(t *testing.T) {
	f := setupChatUC(t, false)

	_, err := f.uc.SendTextMessage(context.Background(), uuid.New().String(), "hello")
	assert.ErrorIs(t, err, syncstore.ErrOffline)
}

func TestSendImageMessage(t *testing.T) {
	f := setupChatUC(t, true)

	f.repo.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)
	f.gw.EXPECT().PublishChange(models.ChangeInsert).Return(nil)

	message, err := f.uc.SendImageMessage(context.Background(), uuid.New().String(),
		"summit.jpg", bytes.NewReader([]byte("fake image bytes")))
	require.NoError(t, err)
	require.NotNil(t, message.ImageURL)
	assert.Contains(t, *message.ImageURL, "chat-images/")
	assert.Contains(t, *message.ImageURL, ".jpg")
}

func TestSendImageMessage_RejectsEmptyImage(t *testing.T) {
	f := setupChatUC(t, true)

	_, err := f.uc.SendImageMessage(context.Background(), uuid.New().String(),
		"empty.png", bytes.NewReader(nil))
	assert.Error(t, err)
}

func TestListMessages_FallsBackToCache(t *testing.T) {
	f := setupChatUC(t, true)

	text := "first"
	seeded := models.ChatMessage{ID: uuid.New(), Text: &text, AuthorID: uuid.New(), Timestamp: time.Now().UTC()}

	f.repo.EXPECT().ListMessages(gomock.Any()).Return([]models.ChatMessage{seeded}, nil)
	got, err := f.uc.ListMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	f.repo.EXPECT().ListMessages(gomock.Any()).Return(nil, errors.New("connection refused"))
	got, err = f.uc.ListMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, seeded.ID, got[0].ID)
}

func TestLoadCachedMessages_EmptyBeforeFirstRefresh(t *testing.T) {
	f := setupChatUC(t, true)

	assert.Empty(t, f.uc.LoadCachedMessages(context.Background()))
}
