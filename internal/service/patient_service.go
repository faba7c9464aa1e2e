package service

import (
	"context"

	"medinote-be/internal/dto"
	"medinote-be/internal/entity"
	"medinote-be/internal/pkg/apperror"
	"medinote-be/internal/pkg/serverutils"
	"medinote-be/internal/repository/specification"
	"medinote-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IPatientService interface {
	Create(ctx context.Context, callerId uuid.UUID, req *dto.CreatePatientRequest) (*dto.CreatePatientResponse, error)
	List(ctx context.Context, callerId uuid.UUID, doctorId uuid.UUID) (*dto.ListPatientsResponse, error)
	IdByEmail(ctx context.Context, callerId uuid.UUID, email string) (*dto.PatientIdResponse, error)
	Details(ctx context.Context, callerId uuid.UUID, patientId uuid.UUID) (*dto.PatientResponse, error)
}

type patientService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPatientService(uowFactory unitofwork.RepositoryFactory) IPatientService {
	return &patientService{uowFactory: uowFactory}
}

func (s *patientService) Create(ctx context.Context, callerId uuid.UUID, req *dto.CreatePatientRequest) (*dto.CreatePatientResponse, error) {
	if err := serverutils.AssertOwns(callerId, req.DoctorId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Emails are unique per doctor, not globally.
	if req.Email != nil && *req.Email != "" {
		existing, err := uow.PatientRepository().FindOne(ctx,
			specification.OwnedByDoctor{DoctorID: callerId},
			specification.ByEmail{Email: *req.Email},
		)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.New(apperror.Conflict, "Patient with this email already exists for this doctor.")
		}
	}

	patient := &entity.Patient{
		Id:                uuid.New(),
		DoctorId:          callerId,
		Name:              req.Name,
		Email:             req.Email,
		Pronouns:          req.Pronouns,
		Background:        req.Background,
		MedicalHistory:    req.MedicalHistory,
		FamilyHistory:     req.FamilyHistory,
		SocialHistory:     req.SocialHistory,
		PreviousTreatment: req.PreviousTreatment,
	}

	if err := uow.PatientRepository().Create(ctx, patient); err != nil {
		return nil, err
	}

	return &dto.CreatePatientResponse{Patient: *toPatientResponse(patient)}, nil
}

func (s *patientService) List(ctx context.Context, callerId uuid.UUID, doctorId uuid.UUID) (*dto.ListPatientsResponse, error) {
	if err := serverutils.AssertOwns(callerId, doctorId); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	patients, err := uow.PatientRepository().FindAll(ctx, specification.OwnedByDoctor{DoctorID: doctorId})
	if err != nil {
		return nil, err
	}

	resp := &dto.ListPatientsResponse{Patients: make([]dto.PatientResponse, 0, len(patients))}
	for _, p := range patients {
		resp.Patients = append(resp.Patients, *toPatientResponse(p))
	}
	return resp, nil
}

func (s *patientService) IdByEmail(ctx context.Context, callerId uuid.UUID, email string) (*dto.PatientIdResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	patient, err := uow.PatientRepository().FindOne(ctx,
		specification.OwnedByDoctor{DoctorID: callerId},
		specification.ByEmail{Email: email},
	)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.New(apperror.NotFound, "Patient not found")
	}
	return &dto.PatientIdResponse{Id: patient.Id.String()}, nil
}

func (s *patientService) Details(ctx context.Context, callerId uuid.UUID, patientId uuid.UUID) (*dto.PatientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	patient, err := uow.PatientRepository().FindOne(ctx,
		specification.ByID{ID: patientId},
		specification.OwnedByDoctor{DoctorID: callerId},
	)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.New(apperror.NotFound, "Patient not found")
	}
	return toPatientResponse(patient), nil
}

func toPatientResponse(p *entity.Patient) *dto.PatientResponse {
	return &dto.PatientResponse{
		Id:                p.Id.String(),
		Name:              p.Name,
		Email:             p.Email,
		DoctorId:          p.DoctorId.String(),
		Pronouns:          p.Pronouns,
		Background:        p.Background,
		MedicalHistory:    p.MedicalHistory,
		FamilyHistory:     p.FamilyHistory,
		SocialHistory:     p.SocialHistory,
		PreviousTreatment: p.PreviousTreatment,
	}
}
