package serverutils

import (
	"strings"

	"medinote-be/internal/pkg/apperror"
	"medinote-be/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
)

// DoctorIDKey is the Locals key the middleware stores the authenticated doctor id under.
const DoctorIDKey = "doctor_id"

// NewJwtMiddleware builds the authorization gate. Every protected route group mounts
// this; it accepts only access tokens (a refresh token is a 401 here) and stores the
// caller's doctor id for the handlers.
func NewJwtMiddleware(tm *token.Manager) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
			return apperror.New(apperror.Unauthorized, "Could not validate credentials")
		}

		claims, err := tm.VerifyAccess(authHeader[7:])
		if err != nil {
			return apperror.Wrap(apperror.Unauthorized, "Could not validate credentials", err)
		}

		ctx.Locals(DoctorIDKey, claims.DoctorID)
		return ctx.Next()
	}
}

// DoctorID returns the authenticated doctor id set by the middleware.
func DoctorID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(DoctorIDKey).(string)
	return id
}
