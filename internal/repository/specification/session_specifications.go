package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByPatientID filters session rows by patient.
type ByPatientID struct {
	PatientID uuid.UUID
}

func (s ByPatientID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("patient_id = ?", s.PatientID)
}

// BySessionID filters chunk and notification rows by session.
type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}
