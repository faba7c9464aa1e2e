package contract

import (
	"context"

	"medinote-be/internal/entity"
	"medinote-be/internal/repository/specification"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Patient, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Patient, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
