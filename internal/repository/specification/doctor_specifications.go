package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByEmail matches the email column exactly (emails are case-sensitive here).
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// OwnedByDoctor scopes any doctor-owned table to one doctor. This is the ownership
// predicate every multi-tenant lookup folds in, so a foreign row and a missing row
// are indistinguishable to the caller.
type OwnedByDoctor struct {
	DoctorID uuid.UUID
}

func (s OwnedByDoctor) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("doctor_id = ?", s.DoctorID)
}

// SharedOrOwnedByDoctor matches rows owned by the doctor plus the shared built-ins
// (doctor_id IS NULL), used for template listing.
type SharedOrOwnedByDoctor struct {
	DoctorID uuid.UUID
}

func (s SharedOrOwnedByDoctor) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("doctor_id = ? OR doctor_id IS NULL", s.DoctorID)
}
