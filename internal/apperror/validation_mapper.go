package apperror

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator builds the validator used by the service layer. Field names in
// validation errors come from the json tag, so messages match the snake_case
// argument names that MCP clients send.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// RequiredField reports a missing required field
func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is required", field))
}

// InvalidField reports a field that failed validation
func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is invalid", field))
}

// MapValidationError converts validator errors into AppErrors
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		e := errs[0]

		switch e.Tag() {
		case "required":
			return RequiredField(e.Field())
		default:
			return InvalidField(e.Field())
		}
	}

	return ErrInvalidInput
}
