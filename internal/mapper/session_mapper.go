package mapper

import (
	"medinote-be/internal/entity"
	"medinote-be/internal/model"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToEntity(s *model.Session) *entity.Session {
	if s == nil {
		return nil
	}
	return &entity.Session{
		Id:               s.Id,
		DoctorId:         s.DoctorId,
		PatientId:        s.PatientId,
		TemplateId:       s.TemplateId,
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

func (m *SessionMapper) ToModel(s *entity.Session) *model.Session {
	if s == nil {
		return nil
	}
	return &model.Session{
		Id:               s.Id,
		DoctorId:         s.DoctorId,
		PatientId:        s.PatientId,
		TemplateId:       s.TemplateId,
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

func (m *SessionMapper) ToEntities(sessions []*model.Session) []*entity.Session {
	entities := make([]*entity.Session, len(sessions))
	for i, s := range sessions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
