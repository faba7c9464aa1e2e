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

type AudioChunkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AudioChunkMapper
}

func NewAudioChunkRepository(db *gorm.DB) contract.AudioChunkRepository {
	return &AudioChunkRepositoryImpl{
		db:     db,
		mapper: mapper.NewAudioChunkMapper(),
	}
}

func (r *AudioChunkRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AudioChunkRepositoryImpl) Create(ctx context.Context, chunk *entity.AudioChunk) error {
	m := r.mapper.ToModel(chunk)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*chunk = *r.mapper.ToEntity(m)
	return nil
}

func (r *AudioChunkRepositoryImpl) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionId).Delete(&model.AudioChunk{}).Error
}

func (r *AudioChunkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AudioChunk, error) {
	var models []*model.AudioChunk
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AudioChunkRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AudioChunk{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
