package entity

import "github.com/google/uuid"

type Doctor struct {
	Id             uuid.UUID
	Name           string
	Email          string
	Specialization *string
	PasswordHash   string
}
