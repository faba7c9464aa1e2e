package contract

import (
	"context"

	"medinote-be/internal/entity"
	"medinote-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AudioChunkRepository interface {
	Create(ctx context.Context, chunk *entity.AudioChunk) error
	DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AudioChunk, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type ChunkNotificationRepository interface {
	Create(ctx context.Context, notification *entity.ChunkUploadNotification) error
	DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
