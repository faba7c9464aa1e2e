package service

import (
	"context"
	"testing"
	"time"

	"medinote-be/internal/dto"
	"medinote-be/internal/entity"
	"medinote-be/internal/pkg/apperror"
	"medinote-be/internal/pkg/password"
	"medinote-be/internal/pkg/token"
	"medinote-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenManager(t *testing.T) *token.Manager {
	t.Helper()
	tm, err := token.NewManager("test-secret", 30*time.Minute, 7*24*time.Hour)
	require.NoError(t, err)
	return tm
}

func TestAuthSignup(t *testing.T) {
	tm := newTestTokenManager(t)

	t.Run("creates doctor and returns token pair", func(t *testing.T) {
		var created *entity.Doctor
		uow := &mockUow{doctors: &mockDoctorRepo{
			FindOneFn: func(ctx context.Context, specs ...specification.Specification) (*entity.Doctor, error) {
				return nil, nil
			},
			CreateFn: func(ctx context.Context, doctor *entity.Doctor) error {
				created = doctor
				return nil
			},
		}}
		svc := NewAuthService(&mockFactory{uow: uow}, tm)

		res, err := svc.Signup(context.Background(), &dto.SignupRequest{
			Name:     "Dr. Chen",
			Email:    "chen@clinic.example",
			Password: "s3cret-pass",
		})
		require.NoError(t, err)
		require.NotNil(t, created)

		assert.Equal(t, "chen@clinic.example", created.Email)
		assert.True(t, password.Verify("s3cret-pass", created.PasswordHash))
		assert.Equal(t, created.Id.String(), res.DoctorId)
		assert.Equal(t, "bearer", res.TokenType)

		claims, err := tm.VerifyAccess(res.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, created.Id.String(), claims.DoctorID)

		_, err = tm.VerifyRefresh(res.RefreshToken)
		assert.NoError(t, err)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		uow := &mockUow{doctors: &mockDoctorRepo{
			FindOneFn: func(ctx context.Context, specs ...specification.Specification) (*entity.Doctor, error) {
				return &entity.Doctor{Id: uuid.New(), Email: "chen@clinic.example"}, nil
			},
		}}
		svc := NewAuthService(&mockFactory{uow: uow}, tm)

		_, err := svc.Signup(context.Background(), &dto.SignupRequest{
			Name:     "Dr. Chen",
			Email:    "chen@clinic.example",
			Password: "s3cret-pass",
		})
		require.Error(t, err)

		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.Conflict, appErr.Kind)
		assert.Equal(t, "Email already registered", appErr.Detail)
	})
}

func TestAuthLogin(t *testing.T) {
	tm := newTestTokenManager(t)

	hash, err := password.Hash("right-password")
	require.NoError(t, err)
	doctor := &entity.Doctor{Id: uuid.New(), Email: "chen@clinic.example", PasswordHash: hash}

	newSvc := func(found *entity.Doctor) IAuthService {
		uow := &mockUow{doctors: &mockDoctorRepo{
			FindOneFn: func(ctx context.Context, specs ...specification.Specification) (*entity.Doctor, error) {
				return found, nil
			},
		}}
		return NewAuthService(&mockFactory{uow: uow}, tm)
	}

	t.Run("valid credentials", func(t *testing.T) {
		res, err := newSvc(doctor).Login(context.Background(), &dto.LoginRequest{
			Email:    "chen@clinic.example",
			Password: "right-password",
		})
		require.NoError(t, err)
		assert.Equal(t, doctor.Id.String(), res.DoctorId)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := newSvc(doctor).Login(context.Background(), &dto.LoginRequest{
			Email:    "chen@clinic.example",
			Password: "wrong-password",
		})
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.Unauthorized, appErr.Kind)
		assert.Equal(t, "Invalid credentials", appErr.Detail)
	})

	t.Run("unknown email gets the same error as wrong password", func(t *testing.T) {
		_, err := newSvc(nil).Login(context.Background(), &dto.LoginRequest{
			Email:    "nobody@clinic.example",
			Password: "right-password",
		})
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.Unauthorized, appErr.Kind)
		assert.Equal(t, "Invalid credentials", appErr.Detail)
	})
}

func TestAuthRefresh(t *testing.T) {
	tm := newTestTokenManager(t)
	doctor := &entity.Doctor{Id: uuid.New(), Email: "chen@clinic.example"}

	newSvc := func(found *entity.Doctor) IAuthService {
		uow := &mockUow{doctors: &mockDoctorRepo{
			FindOneFn: func(ctx context.Context, specs ...specification.Specification) (*entity.Doctor, error) {
				return found, nil
			},
		}}
		return NewAuthService(&mockFactory{uow: uow}, tm)
	}

	t.Run("refresh token yields a new pair", func(t *testing.T) {
		refresh, err := tm.IssueRefresh(doctor.Email, doctor.Id)
		require.NoError(t, err)

		res, err := newSvc(doctor).Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: refresh})
		require.NoError(t, err)

		_, err = tm.VerifyAccess(res.AccessToken)
		assert.NoError(t, err)
	})

	t.Run("access token is not accepted as refresh", func(t *testing.T) {
		access, err := tm.IssueAccess(doctor.Email, doctor.Id)
		require.NoError(t, err)

		_, err = newSvc(doctor).Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: access})
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.Unauthorized, appErr.Kind)
	})

	t.Run("deleted doctor cannot refresh", func(t *testing.T) {
		refresh, err := tm.IssueRefresh(doctor.Email, doctor.Id)
		require.NoError(t, err)

		_, err = newSvc(nil).Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: refresh})
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.Unauthorized, appErr.Kind)
	})
}
