package contract

import (
	"context"

	"medinote-be/internal/entity"
	"medinote-be/internal/repository/specification"
)

type TemplateRepository interface {
	Create(ctx context.Context, template *entity.Template) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Template, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Template, error)
}
