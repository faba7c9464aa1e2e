package unitofwork

import (
	"context"

	"medinote-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	DoctorRepository() contract.DoctorRepository
	PatientRepository() contract.PatientRepository
	TemplateRepository() contract.TemplateRepository
	SessionRepository() contract.SessionRepository
	AudioChunkRepository() contract.AudioChunkRepository
	ChunkNotificationRepository() contract.ChunkNotificationRepository
}
