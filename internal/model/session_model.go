package model

import "github.com/google/uuid"

type Session struct {
	Id               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DoctorId         uuid.UUID  `gorm:"type:uuid;not null;index"`
	PatientId        uuid.UUID  `gorm:"type:uuid;not null;index"`
	TemplateId       *uuid.UUID `gorm:"type:uuid"`
	SessionTitle     *string    `gorm:"type:varchar(150)"`
	SessionSummary   *string    `gorm:"type:text"`
	TranscriptStatus *string    `gorm:"type:varchar(20)"`
	Transcript       *string    `gorm:"type:text"`
	Status           string     `gorm:"type:varchar(20)"`
	Date             *string    `gorm:"type:varchar(10)"`
	StartTime        *string    `gorm:"type:varchar(30)"`
	EndTime          *string    `gorm:"type:varchar(30)"`
	Duration         *string    `gorm:"type:varchar(50)"`
}

func (Session) TableName() string {
	return "session"
}
