package serverutils

import (
	"fmt"
	"strings"

	"medinote-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks a request DTO against its validate tags. Runs at the
// boundary, before any business logic or write.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.Wrap(apperror.InvalidArgument, "Missing required fields.", err)
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, fe.Field())
	}
	return apperror.New(apperror.InvalidArgument,
		fmt.Sprintf("Missing or invalid fields: %s", strings.Join(fields, ", ")))
}
