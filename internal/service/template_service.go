package service

import (
	"context"

	"medinote-be/internal/dto"
	"medinote-be/internal/repository/specification"
	"medinote-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITemplateService interface {
	List(ctx context.Context, callerId uuid.UUID) (*dto.ListTemplatesResponse, error)
}

type templateService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTemplateService(uowFactory unitofwork.RepositoryFactory) ITemplateService {
	return &templateService{uowFactory: uowFactory}
}

// List returns the caller's own templates plus the shared built-ins.
func (s *templateService) List(ctx context.Context, callerId uuid.UUID) (*dto.ListTemplatesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	templates, err := uow.TemplateRepository().FindAll(ctx, specification.SharedOrOwnedByDoctor{DoctorID: callerId})
	if err != nil {
		return nil, err
	}

	resp := &dto.ListTemplatesResponse{Templates: make([]dto.TemplateResponse, 0, len(templates))}
	for _, t := range templates {
		var doctorId *string
		if t.DoctorId != nil {
			id := t.DoctorId.String()
			doctorId = &id
		}
		resp.Templates = append(resp.Templates, dto.TemplateResponse{
			Id:       t.Id.String(),
			DoctorId: doctorId,
			Title:    t.Title,
			Type:     string(t.Type),
		})
	}
	return resp, nil
}
