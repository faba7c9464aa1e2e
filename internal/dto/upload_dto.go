package dto

import "github.com/google/uuid"

type PresignRequest struct {
	SessionId   uuid.UUID `json:"sessionId" validate:"required"`
	ChunkNumber *int      `json:"chunkNumber" validate:"required,gte=0"`
	MimeType    string    `json:"mimeType" validate:"required"`
}

type PresignResponse struct {
	URL         string `json:"url"`
	StoragePath string `json:"storagePath"`
	PublicURL   string `json:"publicUrl"`
}

// ChunkUploadedRequest mirrors the uploader client's notify payload. Pointer fields
// distinguish "absent" from zero values: chunkNumber 0 and isLast false are valid.
type ChunkUploadedRequest struct {
	SessionId          uuid.UUID  `json:"sessionId" validate:"required"`
	StoragePath        string     `json:"storagePath" validate:"required"`
	ChunkNumber        *int       `json:"chunkNumber" validate:"required,gte=0"`
	IsLast             *bool      `json:"isLast" validate:"required"`
	TotalChunksClient  *int       `json:"totalChunksClient" validate:"required,gte=0"`
	PublicURL          string     `json:"publicUrl" validate:"required"`
	MimeType           string     `json:"mimeType" validate:"required"`
	SelectedTemplateId *uuid.UUID `json:"selectedTemplateId" validate:"required"`
	Model              string     `json:"model" validate:"required"`
}
