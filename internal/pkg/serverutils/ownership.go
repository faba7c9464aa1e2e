package serverutils

import (
	"medinote-be/internal/pkg/apperror"

	"github.com/google/uuid"
)

// AssertOwns is the single ownership policy for endpoints that receive an explicit
// doctor id: a valid token for the wrong doctor is a Forbidden, not an Unauthorized.
func AssertOwns(callerID, resourceOwnerID uuid.UUID) error {
	if callerID == uuid.Nil || callerID != resourceOwnerID {
		return apperror.New(apperror.Forbidden, "Doctor ID mismatch or unauthorized")
	}
	return nil
}
