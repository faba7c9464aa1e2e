package dto

import "github.com/google/uuid"

type CreateSessionRequest struct {
	PatientId    uuid.UUID  `json:"patient_id" validate:"required"`
	TemplateId   *uuid.UUID `json:"template_id"`
	SessionTitle *string    `json:"session_title"`
	Status       *string    `json:"status"`
	Date         *string    `json:"date"`
	StartTime    *string    `json:"start_time"`
}

// UpdateSessionRequest is a partial update: nil fields are left untouched.
type UpdateSessionRequest struct {
	Id               uuid.UUID  `json:"-"`
	TemplateId       *uuid.UUID `json:"template_id"`
	SessionTitle     *string    `json:"session_title"`
	SessionSummary   *string    `json:"session_summary"`
	TranscriptStatus *string    `json:"transcript_status"`
	Transcript       *string    `json:"transcript"`
	Status           *string    `json:"status"`
	Date             *string    `json:"date"`
	StartTime        *string    `json:"start_time"`
	EndTime          *string    `json:"end_time"`
	Duration         *string    `json:"duration"`
}

type SessionResponse struct {
	Id               string  `json:"id"`
	DoctorId         string  `json:"doctor_id"`
	PatientId        string  `json:"patient_id"`
	TemplateId       *string `json:"template_id"`
	SessionTitle     *string `json:"session_title"`
	SessionSummary   *string `json:"session_summary"`
	TranscriptStatus *string `json:"transcript_status"`
	Transcript       *string `json:"transcript"`
	Status           string  `json:"status"`
	Date             *string `json:"date"`
	StartTime        *string `json:"start_time"`
	EndTime          *string `json:"end_time"`
	Duration         *string `json:"duration"`
}

type DeleteSessionResponse struct {
	Message string `json:"message"`
}
