package contract

import (
	"context"

	"medinote-be/internal/entity"
	"medinote-be/internal/repository/specification"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Doctor, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
