package implementation

import (
	"context"

	"medinote-be/internal/entity"
	"medinote-be/internal/mapper"
	"medinote-be/internal/model"
	"medinote-be/internal/repository/contract"
	"medinote-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChunkNotificationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChunkNotificationMapper
}

func NewChunkNotificationRepository(db *gorm.DB) contract.ChunkNotificationRepository {
	return &ChunkNotificationRepositoryImpl{
		db:     db,
		mapper: mapper.NewChunkNotificationMapper(),
	}
}

func (r *ChunkNotificationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChunkNotificationRepositoryImpl) Create(ctx context.Context, notification *entity.ChunkUploadNotification) error {
	m := r.mapper.ToModel(notification)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*notification = *r.mapper.ToEntity(m)
	return nil
}

func (r *ChunkNotificationRepositoryImpl) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionId).Delete(&model.ChunkUploadNotification{}).Error
}

func (r *ChunkNotificationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChunkUploadNotification{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
