package entity

import "github.com/google/uuid"

type TemplateType string

const (
	TemplateTypeDefault    TemplateType = "default"
	TemplateTypePredefined TemplateType = "predefined"
	TemplateTypeCustom     TemplateType = "custom"
)

// Template is a note-structure preset a session may reference. DoctorId is nil for
// the built-in defaults shared by every doctor.
type Template struct {
	Id       uuid.UUID
	DoctorId *uuid.UUID
	Title    string
	Type     TemplateType
}
