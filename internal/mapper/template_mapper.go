package mapper

import (
	"medinote-be/internal/entity"
	"medinote-be/internal/model"
)

type TemplateMapper struct{}

func NewTemplateMapper() *TemplateMapper {
	return &TemplateMapper{}
}

func (m *TemplateMapper) ToEntity(t *model.Template) *entity.Template {
	if t == nil {
		return nil
	}
	return &entity.Template{
		Id:       t.Id,
		DoctorId: t.DoctorId,
		Title:    t.Title,
		Type:     entity.TemplateType(t.Type),
	}
}

func (m *TemplateMapper) ToModel(t *entity.Template) *model.Template {
	if t == nil {
		return nil
	}
	return &model.Template{
		Id:       t.Id,
		DoctorId: t.DoctorId,
		Title:    t.Title,
		Type:     string(t.Type),
	}
}

func (m *TemplateMapper) ToEntities(templates []*model.Template) []*entity.Template {
	entities := make([]*entity.Template, len(templates))
	for i, t := range templates {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
