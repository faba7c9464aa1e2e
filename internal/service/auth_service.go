package service

import (
	"context"

	"medinote-be/internal/dto"
	"medinote-be/internal/entity"
	"medinote-be/internal/pkg/apperror"
	"medinote-be/internal/pkg/password"
	"medinote-be/internal/pkg/token"
	"medinote-be/internal/repository/specification"
	"medinote-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error)
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	tokenManager *token.Manager
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, tokenManager *token.Manager) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		tokenManager: tokenManager,
	}
}

func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.TokenResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.DoctorRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.New(apperror.Conflict, "Email already registered")
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	doctor := &entity.Doctor{
		Id:             uuid.New(),
		Name:           req.Name,
		Email:          req.Email,
		Specialization: req.Specialization,
		PasswordHash:   hash,
	}

	if err := uow.DoctorRepository().Create(ctx, doctor); err != nil {
		return nil, err
	}

	return s.issueTokens(doctor)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	doctor, err := uow.DoctorRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	// Same response whether the account is missing or the password is wrong.
	if doctor == nil || !password.Verify(req.Password, doctor.PasswordHash) {
		return nil, apperror.New(apperror.Unauthorized, "Invalid credentials")
	}

	return s.issueTokens(doctor)
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error) {
	claims, err := s.tokenManager.VerifyRefresh(req.RefreshToken)
	if err != nil {
		return nil, apperror.New(apperror.Unauthorized, "Could not validate credentials")
	}

	doctorId, err := uuid.Parse(claims.DoctorID)
	if err != nil {
		return nil, apperror.New(apperror.Unauthorized, "Could not validate credentials")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	doctor, err := uow.DoctorRepository().FindOne(ctx, specification.ByID{ID: doctorId})
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.New(apperror.Unauthorized, "Could not validate credentials")
	}

	return s.issueTokens(doctor)
}

func (s *authService) issueTokens(doctor *entity.Doctor) (*dto.TokenResponse, error) {
	access, err := s.tokenManager.IssueAccess(doctor.Email, doctor.Id)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokenManager.IssueRefresh(doctor.Email, doctor.Id)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		DoctorId:     doctor.Id.String(),
	}, nil
}
