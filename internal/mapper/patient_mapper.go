package mapper

import (
	"medinote-be/internal/entity"
	"medinote-be/internal/model"
)

type PatientMapper struct{}

func NewPatientMapper() *PatientMapper {
	return &PatientMapper{}
}

func (m *PatientMapper) ToEntity(p *model.Patient) *entity.Patient {
	if p == nil {
		return nil
	}
	return &entity.Patient{
		Id:                p.Id,
		DoctorId:          p.DoctorId,
		Name:              p.Name,
		Email:             p.Email,
		Pronouns:          p.Pronouns,
		Background:        p.Background,
		MedicalHistory:    p.MedicalHistory,
		FamilyHistory:     p.FamilyHistory,
		SocialHistory:     p.SocialHistory,
		PreviousTreatment: p.PreviousTreatment,
	}
}

func (m *PatientMapper) ToModel(p *entity.Patient) *model.Patient {
	if p == nil {
		return nil
	}
	return &model.Patient{
		Id:                p.Id,
		DoctorId:          p.DoctorId,
		Name:              p.Name,
		Email:             p.Email,
		Pronouns:          p.Pronouns,
		Background:        p.Background,
		MedicalHistory:    p.MedicalHistory,
		FamilyHistory:     p.FamilyHistory,
		SocialHistory:     p.SocialHistory,
		PreviousTreatment: p.PreviousTreatment,
	}
}

func (m *PatientMapper) ToEntities(patients []*model.Patient) []*entity.Patient {
	entities := make([]*entity.Patient, len(patients))
	for i, p := range patients {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
