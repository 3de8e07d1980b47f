package helper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorMap flattens validator.v10 field errors into the
// field → messages map consumed by JsonValidationError. Non-validator
// errors yield an empty map (generic 422 body).
func ValidationErrorMap(err error) map[string][]string {
	out := map[string][]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return out
	}

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		msg := fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("failed on the '%s=%s' rule", fe.Tag(), fe.Param())
		}
		out[field] = append(out[field], msg)
	}
	return out
}
