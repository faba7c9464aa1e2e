package entity

import "github.com/google/uuid"

type SessionStatus string

// Canonical session state machine: created -> recording -> completed, with failed
// reachable from recording. Both creation and update validate against this set.
const (
	SessionStatusCreated   SessionStatus = "created"
	SessionStatusRecording SessionStatus = "recording"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusFailed    SessionStatus = "failed"
)

func ValidSessionStatus(s string) bool {
	switch SessionStatus(s) {
	case SessionStatusCreated, SessionStatusRecording, SessionStatusCompleted, SessionStatusFailed:
		return true
	}
	return false
}

// Session is one clinical encounter. Date/time/duration fields are stored as text,
// matching the upstream schema the transcription pipeline reads.
type Session struct {
	Id               uuid.UUID
	DoctorId         uuid.UUID
	PatientId        uuid.UUID
	TemplateId       *uuid.UUID
	SessionTitle     *string
	SessionSummary   *string
	TranscriptStatus *string
	Transcript       *string
	Status           string
	Date             *string
	StartTime        *string
	EndTime          *string
	Duration         *string
}
