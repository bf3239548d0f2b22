package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nomadbikers/ridetrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *DiskStore {
	store, err := NewDiskStore(models.AssetsConfig{
		Root:    t.TempDir(),
		BaseURL: "/assets/",
	})
	require.NoError(t, err)
	return store
}

func TestUploadBlobAndPublicURL(t *testing.T) {
	store := newTestStore(t)

	err := store.UploadBlob("chat-images", "user-1-17000000.jpg", []byte("jpeg bytes"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(store.Root(), "chat-images", "user-1-17000000.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg bytes"), data)

	assert.Equal(t, "/assets/chat-images/user-1-17000000.jpg",
		store.GetPublicURL("chat-images", "user-1-17000000.jpg"))
}

func TestUploadBlob_RejectsPathTraversal(t *testing.T) {
	store := newTestStore(t)

	err := store.UploadBlob("avatars", "../../etc/passwd", []byte("nope"))
	assert.Error(t, err)
}
