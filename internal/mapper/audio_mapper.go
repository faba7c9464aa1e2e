package mapper

import (
	"medinote-be/internal/entity"
	"medinote-be/internal/model"
)

type AudioChunkMapper struct{}

func NewAudioChunkMapper() *AudioChunkMapper {
	return &AudioChunkMapper{}
}

func (m *AudioChunkMapper) ToEntity(c *model.AudioChunk) *entity.AudioChunk {
	if c == nil {
		return nil
	}
	return &entity.AudioChunk{
		Id:          c.Id,
		SessionId:   c.SessionId,
		ChunkNumber: c.ChunkNumber,
		StoragePath: c.StoragePath,
		PublicURL:   c.PublicURL,
		MimeType:    c.MimeType,
		UploadTime:  c.UploadTime,
	}
}

func (m *AudioChunkMapper) ToModel(c *entity.AudioChunk) *model.AudioChunk {
	if c == nil {
		return nil
	}
	return &model.AudioChunk{
		Id:          c.Id,
		SessionId:   c.SessionId,
		ChunkNumber: c.ChunkNumber,
		StoragePath: c.StoragePath,
		PublicURL:   c.PublicURL,
		MimeType:    c.MimeType,
		UploadTime:  c.UploadTime,
	}
}

func (m *AudioChunkMapper) ToEntities(chunks []*model.AudioChunk) []*entity.AudioChunk {
	entities := make([]*entity.AudioChunk, len(chunks))
	for i, c := range chunks {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

type ChunkNotificationMapper struct{}

func NewChunkNotificationMapper() *ChunkNotificationMapper {
	return &ChunkNotificationMapper{}
}

func (m *ChunkNotificationMapper) ToEntity(n *model.ChunkUploadNotification) *entity.ChunkUploadNotification {
	if n == nil {
		return nil
	}
	return &entity.ChunkUploadNotification{
		Id:                 n.Id,
		SessionId:          n.SessionId,
		ChunkNumber:        n.ChunkNumber,
		TotalChunksClient:  n.TotalChunksClient,
		IsLast:             n.IsLast,
		SelectedTemplateId: n.SelectedTemplateId,
		Model:              n.Model,
		NotifiedAt:         n.NotifiedAt,
	}
}

func (m *ChunkNotificationMapper) ToModel(n *entity.ChunkUploadNotification) *model.ChunkUploadNotification {
	if n == nil {
		return nil
	}
	return &model.ChunkUploadNotification{
		Id:                 n.Id,
		SessionId:          n.SessionId,
		ChunkNumber:        n.ChunkNumber,
		TotalChunksClient:  n.TotalChunksClient,
		IsLast:             n.IsLast,
		SelectedTemplateId: n.SelectedTemplateId,
		Model:              n.Model,
		NotifiedAt:         n.NotifiedAt,
	}
}
