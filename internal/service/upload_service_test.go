package service

import (
	"context"
	"errors"
	"testing"

	"medinote-be/internal/dto"
	"medinote-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPresigner struct {
	PresignFn func(ctx context.Context, key string) (string, error)
}

func (m *mockPresigner) PresignChunkUpload(ctx context.Context, key string) (string, error) {
	return m.PresignFn(ctx, key)
}

func (m *mockPresigner) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func intPtr(n int) *int    { return &n }
func boolPtr(b bool) *bool { return &b }

func TestGetPresignedURL(t *testing.T) {
	sessionId := uuid.New()

	t.Run("mints a URL for the chunk path", func(t *testing.T) {
		var presignedKey string
		presigner := &mockPresigner{
			PresignFn: func(ctx context.Context, key string) (string, error) {
				presignedKey = key
				return "https://store.example.com/signed/" + key, nil
			},
		}
		svc := NewUploadService(&mockFactory{uow: &mockUow{}}, presigner, nil, nopLogger{})

		res, err := svc.GetPresignedURL(context.Background(), &dto.PresignRequest{
			SessionId:   sessionId,
			ChunkNumber: intPtr(0),
			MimeType:    "audio/wav",
		})
		require.NoError(t, err)

		expectedKey := "sessions/" + sessionId.String() + "/chunk_0.wav"
		assert.Equal(t, expectedKey, presignedKey)
		assert.Equal(t, expectedKey, res.StoragePath)
		assert.Contains(t, res.URL, expectedKey)
		assert.Equal(t, "https://cdn.example.com/"+expectedKey, res.PublicURL)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		presigner := &mockPresigner{
			PresignFn: func(ctx context.Context, key string) (string, error) {
				return "", errors.New("store unreachable")
			},
		}
		svc := NewUploadService(&mockFactory{uow: &mockUow{}}, presigner, nil, nopLogger{})

		_, err := svc.GetPresignedURL(context.Background(), &dto.PresignRequest{
			SessionId:   sessionId,
			ChunkNumber: intPtr(0),
			MimeType:    "audio/wav",
		})
		assert.Error(t, err)
	})
}

func TestNotifyChunkUploaded(t *testing.T) {
	sessionId := uuid.New()
	templateId := uuid.New()

	newReq := func(chunkNumber int, isLast bool) *dto.ChunkUploadedRequest {
		return &dto.ChunkUploadedRequest{
			SessionId:          sessionId,
			StoragePath:        "sessions/" + sessionId.String() + "/chunk_0.wav",
			ChunkNumber:        intPtr(chunkNumber),
			IsLast:             boolPtr(isLast),
			TotalChunksClient:  intPtr(5),
			PublicURL:          "https://cdn.example.com/chunk_0.wav",
			MimeType:           "audio/wav",
			SelectedTemplateId: &templateId,
			Model:              "standard",
		}
	}

	t.Run("records chunk and notification together", func(t *testing.T) {
		var chunk *entity.AudioChunk
		var notification *entity.ChunkUploadNotification
		uow := &mockUow{
			chunks: &mockAudioChunkRepo{
				CreateFn: func(ctx context.Context, c *entity.AudioChunk) error {
					chunk = c
					return nil
				},
			},
			notifications: &mockChunkNotificationRepo{
				CreateFn: func(ctx context.Context, n *entity.ChunkUploadNotification) error {
					notification = n
					return nil
				},
			},
		}
		svc := NewUploadService(&mockFactory{uow: uow}, &mockPresigner{}, nil, nopLogger{})

		err := svc.NotifyChunkUploaded(context.Background(), newReq(3, false))
		require.NoError(t, err)

		assert.True(t, uow.begun)
		assert.True(t, uow.committed)
		require.NotNil(t, chunk)
		require.NotNil(t, notification)
		assert.Equal(t, "3", chunk.ChunkNumber)
		assert.Equal(t, "3", notification.ChunkNumber)
		assert.Equal(t, "false", *notification.IsLast)
		assert.Equal(t, "5", *notification.TotalChunksClient)
	})

	t.Run("chunks may arrive out of order", func(t *testing.T) {
		var recorded []string
		uow := &mockUow{
			chunks: &mockAudioChunkRepo{
				CreateFn: func(ctx context.Context, c *entity.AudioChunk) error {
					recorded = append(recorded, c.ChunkNumber)
					return nil
				},
			},
			notifications: &mockChunkNotificationRepo{
				CreateFn: func(ctx context.Context, n *entity.ChunkUploadNotification) error { return nil },
			},
		}
		svc := NewUploadService(&mockFactory{uow: uow}, &mockPresigner{}, nil, nopLogger{})

		for _, n := range []int{2, 0, 1} {
			require.NoError(t, svc.NotifyChunkUploaded(context.Background(), newReq(n, false)))
		}
		assert.Equal(t, []string{"2", "0", "1"}, recorded)
	})

	t.Run("notification failure rolls the chunk back", func(t *testing.T) {
		uow := &mockUow{
			chunks: &mockAudioChunkRepo{
				CreateFn: func(ctx context.Context, c *entity.AudioChunk) error { return nil },
			},
			notifications: &mockChunkNotificationRepo{
				CreateFn: func(ctx context.Context, n *entity.ChunkUploadNotification) error {
					return errors.New("insert failed")
				},
			},
		}
		svc := NewUploadService(&mockFactory{uow: uow}, &mockPresigner{}, nil, nopLogger{})

		err := svc.NotifyChunkUploaded(context.Background(), newReq(0, false))
		require.Error(t, err)
		assert.False(t, uow.committed)
		assert.True(t, uow.rolledBack)
	})

	t.Run("final chunk succeeds without a publisher", func(t *testing.T) {
		uow := &mockUow{
			chunks: &mockAudioChunkRepo{
				CreateFn: func(ctx context.Context, c *entity.AudioChunk) error { return nil },
			},
			notifications: &mockChunkNotificationRepo{
				CreateFn: func(ctx context.Context, n *entity.ChunkUploadNotification) error { return nil },
			},
		}
		svc := NewUploadService(&mockFactory{uow: uow}, &mockPresigner{}, nil, nopLogger{})

		err := svc.NotifyChunkUploaded(context.Background(), newReq(4, true))
		assert.NoError(t, err)
	})
}
