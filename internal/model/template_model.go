package model

import "github.com/google/uuid"

type Template struct {
	Id       uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DoctorId *uuid.UUID `gorm:"type:uuid;index"`
	Title    string     `gorm:"type:varchar(100);not null"`
	Type     string     `gorm:"type:varchar(20);not null"`
}

func (Template) TableName() string {
	return "template"
}
