package model

import "github.com/google/uuid"

type Doctor struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Email          string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Specialization *string   `gorm:"type:varchar(100)"`
	PasswordHash   string    `gorm:"type:text;not null"`
}

func (Doctor) TableName() string {
	return "doctor"
}
