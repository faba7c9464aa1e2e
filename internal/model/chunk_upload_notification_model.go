package model

import "github.com/google/uuid"

type ChunkUploadNotification struct {
	Id                 uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId          uuid.UUID  `gorm:"type:uuid;not null;index"`
	ChunkNumber        string     `gorm:"type:varchar(10);not null"`
	TotalChunksClient  *string    `gorm:"type:varchar(10)"`
	IsLast             *string    `gorm:"type:varchar(5)"`
	SelectedTemplateId *uuid.UUID `gorm:"type:uuid"`
	Model              *string    `gorm:"type:varchar(50)"`
	NotifiedAt         *string    `gorm:"type:varchar(30)"`
}

func (ChunkUploadNotification) TableName() string {
	return "chunk_upload_notification"
}
