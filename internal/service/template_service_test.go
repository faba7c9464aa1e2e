package service

import (
	"context"
	"testing"

	"medinote-be/internal/entity"
	"medinote-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateList(t *testing.T) {
	callerId := uuid.New()
	sharedId := uuid.New()
	ownId := uuid.New()

	uow := &mockUow{templates: &mockTemplateRepo{
		FindAllFn: func(ctx context.Context, specs ...specification.Specification) ([]*entity.Template, error) {
			require.Len(t, specs, 1)
			_, ok := specs[0].(specification.SharedOrOwnedByDoctor)
			require.True(t, ok)
			return []*entity.Template{
				{Id: sharedId, Title: "SOAP Note", Type: entity.TemplateTypeDefault},
				{Id: ownId, DoctorId: &callerId, Title: "My Custom Note", Type: entity.TemplateTypeCustom},
			}, nil
		},
	}}
	svc := NewTemplateService(&mockFactory{uow: uow})

	res, err := svc.List(context.Background(), callerId)
	require.NoError(t, err)
	require.Len(t, res.Templates, 2)

	assert.Nil(t, res.Templates[0].DoctorId)
	assert.Equal(t, "default", res.Templates[0].Type)
	require.NotNil(t, res.Templates[1].DoctorId)
	assert.Equal(t, callerId.String(), *res.Templates[1].DoctorId)
}
