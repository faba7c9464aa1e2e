package service

import (
	"context"
	"strconv"
	"time"

	"medinote-be/internal/dto"
	"medinote-be/internal/entity"
	"medinote-be/internal/pkg/logger"
	"medinote-be/internal/repository/unitofwork"
	"medinote-be/pkg/events"
	pktNats "medinote-be/pkg/nats"
	"medinote-be/pkg/storage"

	"github.com/google/uuid"
)

// ChunkPresigner is the slice of the object-store client the upload flow needs.
type ChunkPresigner interface {
	PresignChunkUpload(ctx context.Context, key string) (string, error)
	PublicURL(key string) string
}

type IUploadService interface {
	GetPresignedURL(ctx context.Context, req *dto.PresignRequest) (*dto.PresignResponse, error)
	NotifyChunkUploaded(ctx context.Context, req *dto.ChunkUploadedRequest) error
}

type uploadService struct {
	uowFactory     unitofwork.RepositoryFactory
	presigner      ChunkPresigner
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewUploadService(
	uowFactory unitofwork.RepositoryFactory,
	presigner ChunkPresigner,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IUploadService {
	return &uploadService{
		uowFactory:     uowFactory,
		presigner:      presigner,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *uploadService) GetPresignedURL(ctx context.Context, req *dto.PresignRequest) (*dto.PresignResponse, error) {
	key := storage.ChunkKey(req.SessionId.String(), *req.ChunkNumber, req.MimeType)

	url, err := s.presigner.PresignChunkUpload(ctx, key)
	if err != nil {
		return nil, err
	}

	return &dto.PresignResponse{
		URL:         url,
		StoragePath: key,
		PublicURL:   s.presigner.PublicURL(key),
	}, nil
}

func (s *uploadService) NotifyChunkUploaded(ctx context.Context, req *dto.ChunkUploadedRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Both rows land together or not at all.
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	chunkNumber := strconv.Itoa(*req.ChunkNumber)
	totalChunks := strconv.Itoa(*req.TotalChunksClient)
	isLast := strconv.FormatBool(*req.IsLast)
	now := time.Now().Format(time.RFC3339)

	chunk := &entity.AudioChunk{
		Id:          uuid.New(),
		SessionId:   req.SessionId,
		ChunkNumber: chunkNumber,
		StoragePath: req.StoragePath,
		PublicURL:   &req.PublicURL,
		MimeType:    &req.MimeType,
		UploadTime:  &now,
	}
	if err := uow.AudioChunkRepository().Create(ctx, chunk); err != nil {
		return err
	}

	notification := &entity.ChunkUploadNotification{
		Id:                 uuid.New(),
		SessionId:          req.SessionId,
		ChunkNumber:        chunkNumber,
		TotalChunksClient:  &totalChunks,
		IsLast:             &isLast,
		SelectedTemplateId: req.SelectedTemplateId,
		Model:              &req.Model,
		NotifiedAt:         &now,
	}
	if err := uow.ChunkNotificationRepository().Create(ctx, notification); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	// The final chunk kicks off downstream processing. Publishing is best effort;
	// the upload itself has already been recorded.
	if *req.IsLast && s.eventPublisher != nil {
		event := events.NewSessionAudioComplete(req.SessionId.String(), *req.TotalChunksClient)
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("upload", "failed to publish audio complete event", map[string]interface{}{
				"session_id": req.SessionId.String(),
				"error":      err.Error(),
			})
		}
	}

	return nil
}
