package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func Validate[T any](value T) (T, error) {
	if err := validate.Struct(value); err != nil {
		return value, ValidationErrorToString(value, err)
	}
	return value, nil
}

// ValidateSlice validates every element, reporting the index of the first
// invalid one.
func ValidateSlice[T any](values []T) error {
	for i, value := range values {
		if _, err := Validate(value); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

func ValidationErrorToString(input any, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var b strings.Builder
	for _, fe := range verrs {
		fmt.Fprintf(&b, "\n • Failed %T validation for field '%s': rule '%s' expected '%s', got '%v'.", input, fe.StructField(), fe.Tag(), fe.Param(), fe.Value())
	}
	return errors.New(b.String())
}
