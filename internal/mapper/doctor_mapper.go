package mapper

import (
	"medinote-be/internal/entity"
	"medinote-be/internal/model"
)

type DoctorMapper struct{}

func NewDoctorMapper() *DoctorMapper {
	return &DoctorMapper{}
}

func (m *DoctorMapper) ToEntity(d *model.Doctor) *entity.Doctor {
	if d == nil {
		return nil
	}
	return &entity.Doctor{
		Id:             d.Id,
		Name:           d.Name,
		Email:          d.Email,
		Specialization: d.Specialization,
		PasswordHash:   d.PasswordHash,
	}
}

func (m *DoctorMapper) ToModel(d *entity.Doctor) *model.Doctor {
	if d == nil {
		return nil
	}
	return &model.Doctor{
		Id:             d.Id,
		Name:           d.Name,
		Email:          d.Email,
		Specialization: d.Specialization,
		PasswordHash:   d.PasswordHash,
	}
}
