package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/daymade/medscribe/internal/api/errors"
)

// Validator interface for domain validation
type Validator interface {
	Validate() error
}

// ValidateForm binds a multipart or urlencoded form into req, running both
// the struct binding tags and the domain Validate method if present.
func ValidateForm(c *gin.Context, req interface{}) error {
	if err := c.ShouldBind(req); err != nil {
		return errors.NewValidationError("Validation failed", bindingErrors(err))
	}

	if v, ok := req.(Validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func bindingErrors(err error) map[string]string {
	validationErrors := make(map[string]string)

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		validationErrors["request"] = "invalid form data"
		return validationErrors
	}

	for _, fieldError := range validationErrs {
		field := strings.ToLower(fieldError.Field())

		switch fieldError.Tag() {
		case "required":
			validationErrors[field] = "is required"
		case "min":
			validationErrors[field] = "is too short"
		case "max":
			validationErrors[field] = "is too long"
		case "oneof":
			validationErrors[field] = "must be one of the allowed values"
		default:
			validationErrors[field] = "is invalid"
		}
	}
	return validationErrors
}
