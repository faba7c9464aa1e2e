package model

import "github.com/google/uuid"

type AudioChunk struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId   uuid.UUID `gorm:"type:uuid;not null;index"`
	ChunkNumber string    `gorm:"type:varchar(10);not null"`
	StoragePath string    `gorm:"type:text;not null"`
	PublicURL   *string   `gorm:"type:text;column:public_url"`
	MimeType    *string   `gorm:"type:varchar(50)"`
	UploadTime  *string   `gorm:"type:varchar(30)"`
}

func (AudioChunk) TableName() string {
	return "audio_chunk"
}
