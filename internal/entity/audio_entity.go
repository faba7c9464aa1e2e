package entity

import "github.com/google/uuid"

// AudioChunk is one uploaded audio segment of a session. ChunkNumber and the time
// fields are textual, matching the upstream schema.
type AudioChunk struct {
	Id          uuid.UUID
	SessionId   uuid.UUID
	ChunkNumber string
	StoragePath string
	PublicURL   *string
	MimeType    *string
	UploadTime  *string
}

// ChunkUploadNotification records the client-reported upload progress for a chunk.
// IsLast is client-declared; the server does not cross-check chunk numbers against
// TotalChunksClient.
type ChunkUploadNotification struct {
	Id                 uuid.UUID
	SessionId          uuid.UUID
	ChunkNumber        string
	TotalChunksClient  *string
	IsLast             *string
	SelectedTemplateId *uuid.UUID
	Model              *string
	NotifiedAt         *string
}
