package service

import (
	"context"

	"medinote-be/internal/entity"
	"medinote-be/internal/repository/contract"
	"medinote-be/internal/repository/specification"
	"medinote-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Hand-rolled mocks with function fields so each test overrides only what it needs.

type mockDoctorRepo struct {
	CreateFn  func(ctx context.Context, doctor *entity.Doctor) error
	FindOneFn func(ctx context.Context, specs ...specification.Specification) (*entity.Doctor, error)
	CountFn   func(ctx context.Context, specs ...specification.Specification) (int64, error)
}

func (m *mockDoctorRepo) Create(ctx context.Context, doctor *entity.Doctor) error {
	return m.CreateFn(ctx, doctor)
}

func (m *mockDoctorRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Doctor, error) {
	return m.FindOneFn(ctx, specs...)
}

func (m *mockDoctorRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if m.CountFn == nil {
		return 0, nil
	}
	return m.CountFn(ctx, specs...)
}

type mockPatientRepo struct {
	CreateFn  func(ctx context.Context, patient *entity.Patient) error
	FindOneFn func(ctx context.Context, specs ...specification.Specification) (*entity.Patient, error)
	FindAllFn func(ctx context.Context, specs ...specification.Specification) ([]*entity.Patient, error)
	CountFn   func(ctx context.Context, specs ...specification.Specification) (int64, error)
}

func (m *mockPatientRepo) Create(ctx context.Context, patient *entity.Patient) error {
	return m.CreateFn(ctx, patient)
}

func (m *mockPatientRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Patient, error) {
	return m.FindOneFn(ctx, specs...)
}

func (m *mockPatientRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Patient, error) {
	return m.FindAllFn(ctx, specs...)
}

func (m *mockPatientRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if m.CountFn == nil {
		return 0, nil
	}
	return m.CountFn(ctx, specs...)
}

type mockSessionRepo struct {
	CreateFn  func(ctx context.Context, session *entity.Session) error
	UpdateFn  func(ctx context.Context, session *entity.Session) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error
	FindOneFn func(ctx context.Context, specs ...specification.Specification) (*entity.Session, error)
	FindAllFn func(ctx context.Context, specs ...specification.Specification) ([]*entity.Session, error)
	CountFn   func(ctx context.Context, specs ...specification.Specification) (int64, error)
}

func (m *mockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	return m.CreateFn(ctx, session)
}

func (m *mockSessionRepo) Update(ctx context.Context, session *entity.Session) error {
	return m.UpdateFn(ctx, session)
}

func (m *mockSessionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFn(ctx, id)
}

func (m *mockSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Session, error) {
	return m.FindOneFn(ctx, specs...)
}

func (m *mockSessionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Session, error) {
	return m.FindAllFn(ctx, specs...)
}

func (m *mockSessionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if m.CountFn == nil {
		return 0, nil
	}
	return m.CountFn(ctx, specs...)
}

type mockAudioChunkRepo struct {
	CreateFn            func(ctx context.Context, chunk *entity.AudioChunk) error
	DeleteBySessionIdFn func(ctx context.Context, sessionId uuid.UUID) error
	FindAllFn           func(ctx context.Context, specs ...specification.Specification) ([]*entity.AudioChunk, error)
	CountFn             func(ctx context.Context, specs ...specification.Specification) (int64, error)
}

func (m *mockAudioChunkRepo) Create(ctx context.Context, chunk *entity.AudioChunk) error {
	return m.CreateFn(ctx, chunk)
}

func (m *mockAudioChunkRepo) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	return m.DeleteBySessionIdFn(ctx, sessionId)
}

func (m *mockAudioChunkRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AudioChunk, error) {
	return m.FindAllFn(ctx, specs...)
}

func (m *mockAudioChunkRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if m.CountFn == nil {
		return 0, nil
	}
	return m.CountFn(ctx, specs...)
}

type mockChunkNotificationRepo struct {
	CreateFn            func(ctx context.Context, notification *entity.ChunkUploadNotification) error
	DeleteBySessionIdFn func(ctx context.Context, sessionId uuid.UUID) error
	CountFn             func(ctx context.Context, specs ...specification.Specification) (int64, error)
}

func (m *mockChunkNotificationRepo) Create(ctx context.Context, notification *entity.ChunkUploadNotification) error {
	return m.CreateFn(ctx, notification)
}

func (m *mockChunkNotificationRepo) DeleteBySessionId(ctx context.Context, sessionId uuid.UUID) error {
	return m.DeleteBySessionIdFn(ctx, sessionId)
}

func (m *mockChunkNotificationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	if m.CountFn == nil {
		return 0, nil
	}
	return m.CountFn(ctx, specs...)
}

type mockTemplateRepo struct {
	CreateFn  func(ctx context.Context, template *entity.Template) error
	FindOneFn func(ctx context.Context, specs ...specification.Specification) (*entity.Template, error)
	FindAllFn func(ctx context.Context, specs ...specification.Specification) ([]*entity.Template, error)
}

func (m *mockTemplateRepo) Create(ctx context.Context, template *entity.Template) error {
	return m.CreateFn(ctx, template)
}

func (m *mockTemplateRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Template, error) {
	return m.FindOneFn(ctx, specs...)
}

func (m *mockTemplateRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Template, error) {
	return m.FindAllFn(ctx, specs...)
}

// mockUow hands out the mock repositories and records transaction calls.
type mockUow struct {
	doctors       *mockDoctorRepo
	patients      *mockPatientRepo
	sessions      *mockSessionRepo
	chunks        *mockAudioChunkRepo
	notifications *mockChunkNotificationRepo
	templates     *mockTemplateRepo

	begun      bool
	committed  bool
	rolledBack bool
}

func (m *mockUow) Begin(ctx context.Context) error { m.begun = true; return nil }
func (m *mockUow) Commit() error                   { m.committed = true; return nil }
func (m *mockUow) Rollback() error {
	if !m.committed {
		m.rolledBack = true
	}
	return nil
}

func (m *mockUow) DoctorRepository() contract.DoctorRepository     { return m.doctors }
func (m *mockUow) PatientRepository() contract.PatientRepository   { return m.patients }
func (m *mockUow) TemplateRepository() contract.TemplateRepository { return m.templates }
func (m *mockUow) SessionRepository() contract.SessionRepository   { return m.sessions }
func (m *mockUow) AudioChunkRepository() contract.AudioChunkRepository {
	return m.chunks
}
func (m *mockUow) ChunkNotificationRepository() contract.ChunkNotificationRepository {
	return m.notifications
}

type mockFactory struct {
	uow *mockUow
}

func (m *mockFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return m.uow
}

var _ unitofwork.UnitOfWork = (*mockUow)(nil)
var _ unitofwork.RepositoryFactory = (*mockFactory)(nil)
