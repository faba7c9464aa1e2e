package entity

import "github.com/google/uuid"

type Patient struct {
	Id                uuid.UUID
	DoctorId          uuid.UUID
	Name              string
	Email             *string
	Pronouns          *string
	Background        *string
	MedicalHistory    *string
	FamilyHistory     *string
	SocialHistory     *string
	PreviousTreatment *string
}
