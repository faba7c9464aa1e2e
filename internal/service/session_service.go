package service

import (
	"context"
	"fmt"
	"time"

	"medinote-be/internal/dto"
	"medinote-be/internal/entity"
	"medinote-be/internal/pkg/apperror"
	"medinote-be/internal/pkg/serverutils"
	"medinote-be/internal/repository/specification"
	"medinote-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ISessionService interface {
	Create(ctx context.Context, callerId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	Show(ctx context.Context, callerId uuid.UUID, sessionId uuid.UUID) (*dto.SessionResponse, error)
	Update(ctx context.Context, callerId uuid.UUID, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error)
	Delete(ctx context.Context, callerId uuid.UUID, sessionId uuid.UUID) (*dto.DeleteSessionResponse, error)
	ListByDoctor(ctx context.Context, callerId uuid.UUID, doctorId uuid.UUID) ([]*dto.SessionResponse, error)
	ListByPatient(ctx context.Context, callerId uuid.UUID, patientId uuid.UUID) ([]*dto.SessionResponse, error)
}

type sessionService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSessionService(uowFactory unitofwork.RepositoryFactory) ISessionService {
	return &sessionService{uowFactory: uowFactory}
}

func (s *sessionService) Create(ctx context.Context, callerId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// The patient must belong to the caller; a foreign patient looks like a missing one.
	patient, err := uow.PatientRepository().FindOne(ctx,
		specification.ByID{ID: req.PatientId},
		specification.OwnedByDoctor{DoctorID: callerId},
	)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.New(apperror.NotFound, "Patient not found or not accessible")
	}

	status := string(entity.SessionStatusCreated)
	if req.Status != nil && *req.Status != "" {
		if !entity.ValidSessionStatus(*req.Status) {
			return nil, apperror.New(apperror.InvalidArgument, fmt.Sprintf("Invalid session status: %s", *req.Status))
		}
		status = *req.Status
	}

	date := req.Date
	if date == nil || *date == "" {
		today := time.Now().Format("2006-01-02")
		date = &today
	}

	session := &entity.Session{
		Id:           uuid.New(),
		DoctorId:     callerId,
		PatientId:    req.PatientId,
		TemplateId:   req.TemplateId,
		SessionTitle: req.SessionTitle,
		Status:       status,
		Date:         date,
		StartTime:    req.StartTime,
	}

	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	return toSessionResponse(session), nil
}

func (s *sessionService) Show(ctx context.Context, callerId uuid.UUID, sessionId uuid.UUID) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.findOwned(ctx, uow, callerId, sessionId)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

func (s *sessionService) Update(ctx context.Context, callerId uuid.UUID, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.findOwned(ctx, uow, callerId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if !entity.ValidSessionStatus(*req.Status) {
			return nil, apperror.New(apperror.InvalidArgument, fmt.Sprintf("Invalid session status: %s", *req.Status))
		}
		session.Status = *req.Status
	}
	if req.TemplateId != nil {
		session.TemplateId = req.TemplateId
	}
	if req.SessionTitle != nil {
		session.SessionTitle = req.SessionTitle
	}
	if req.SessionSummary != nil {
		session.SessionSummary = req.SessionSummary
	}
	if req.TranscriptStatus != nil {
		session.TranscriptStatus = req.TranscriptStatus
	}
	if req.Transcript != nil {
		session.Transcript = req.Transcript
	}
	if req.Date != nil {
		session.Date = req.Date
	}
	if req.StartTime != nil {
		session.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		session.EndTime = req.EndTime
	}
	if req.Duration != nil {
		session.Duration = req.Duration
	}

	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	return toSessionResponse(session), nil
}

func (s *sessionService) Delete(ctx context.Context, callerId uuid.UUID, sessionId uuid.UUID) (*dto.DeleteSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.findOwned(ctx, uow, callerId, sessionId)
	if err != nil {
		return nil, err
	}

	// Chunks and notifications go with the session, all or nothing.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.AudioChunkRepository().DeleteBySessionId(ctx, session.Id); err != nil {
		return nil, err
	}
	if err := uow.ChunkNotificationRepository().DeleteBySessionId(ctx, session.Id); err != nil {
		return nil, err
	}
	if err := uow.SessionRepository().Delete(ctx, session.Id); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.DeleteSessionResponse{Message: "Session deleted successfully"}, nil
}

func (s *sessionService) ListByDoctor(ctx context.Context, callerId uuid.UUID, doctorId uuid.UUID) ([]*dto.SessionResponse, error) {
	if err := serverutils.AssertOwns(callerId, doctorId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.SessionRepository().FindAll(ctx, specification.OwnedByDoctor{DoctorID: doctorId})
	if err != nil {
		return nil, err
	}
	return toSessionResponses(sessions), nil
}

func (s *sessionService) ListByPatient(ctx context.Context, callerId uuid.UUID, patientId uuid.UUID) ([]*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	patient, err := uow.PatientRepository().FindOne(ctx,
		specification.ByID{ID: patientId},
		specification.OwnedByDoctor{DoctorID: callerId},
	)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.New(apperror.NotFound, "Patient not found or not accessible")
	}

	sessions, err := uow.SessionRepository().FindAll(ctx, specification.ByPatientID{PatientID: patientId})
	if err != nil {
		return nil, err
	}
	return toSessionResponses(sessions), nil
}

func (s *sessionService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, callerId uuid.UUID, sessionId uuid.UUID) (*entity.Session, error) {
	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.OwnedByDoctor{DoctorID: callerId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.New(apperror.NotFound, "Session not found")
	}
	return session, nil
}

func toSessionResponse(s *entity.Session) *dto.SessionResponse {
	var templateId *string
	if s.TemplateId != nil {
		id := s.TemplateId.String()
		templateId = &id
	}
	return &dto.SessionResponse{
		Id:               s.Id.String(),
		DoctorId:         s.DoctorId.String(),
		PatientId:        s.PatientId.String(),
		TemplateId:       templateId,
		SessionTitle:     s.SessionTitle,
		SessionSummary:   s.SessionSummary,
		TranscriptStatus: s.TranscriptStatus,
		Transcript:       s.Transcript,
		Status:           s.Status,
		Date:             s.Date,
		StartTime:        s.StartTime,
		EndTime:          s.EndTime,
		Duration:         s.Duration,
	}
}

func toSessionResponses(sessions []*entity.Session) []*dto.SessionResponse {
	resp := make([]*dto.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, toSessionResponse(s))
	}
	return resp
}
