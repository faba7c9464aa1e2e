package dto

import "github.com/google/uuid"

type CreatePatientRequest struct {
	DoctorId          uuid.UUID `json:"doctor_id" validate:"required"`
	Name              string    `json:"name" validate:"required,max=100"`
	Email             *string   `json:"email" validate:"omitempty,email"`
	Pronouns          *string   `json:"pronouns"`
	Background        *string   `json:"background"`
	MedicalHistory    *string   `json:"medical_history"`
	FamilyHistory     *string   `json:"family_history"`
	SocialHistory     *string   `json:"social_history"`
	PreviousTreatment *string   `json:"previous_treatment"`
}

type PatientResponse struct {
	Id                string  `json:"id"`
	Name              string  `json:"name"`
	Email             *string `json:"email"`
	DoctorId          string  `json:"doctor_id"`
	Pronouns          *string `json:"pronouns"`
	Background        *string `json:"background"`
	MedicalHistory    *string `json:"medical_history"`
	FamilyHistory     *string `json:"family_history"`
	SocialHistory     *string `json:"social_history"`
	PreviousTreatment *string `json:"previous_treatment"`
}

type CreatePatientResponse struct {
	Patient PatientResponse `json:"patient"`
}

type ListPatientsResponse struct {
	Patients []PatientResponse `json:"patients"`
}

type PatientIdResponse struct {
	Id string `json:"id"`
}
