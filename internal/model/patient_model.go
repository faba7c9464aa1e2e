package model

import "github.com/google/uuid"

type Patient struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DoctorId          uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uix_doctor_email;constraint:OnDelete:CASCADE"`
	Name              string    `gorm:"type:varchar(100);not null"`
	Email             *string   `gorm:"type:varchar(100);uniqueIndex:uix_doctor_email"`
	Pronouns          *string   `gorm:"type:varchar(20)"`
	Background        *string   `gorm:"type:text"`
	MedicalHistory    *string   `gorm:"type:text"`
	FamilyHistory     *string   `gorm:"type:text"`
	SocialHistory     *string   `gorm:"type:text"`
	PreviousTreatment *string   `gorm:"type:text"`
}

func (Patient) TableName() string {
	return "patient"
}
