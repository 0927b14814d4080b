package domain

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError is a single field-level validation problem.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every problem found while validating a value.
type ValidationError struct {
	Problems []FieldError
}

func (v *ValidationError) Add(field, format string, args ...any) {
	v.Problems = append(v.Problems, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// OrNil returns v as an error when it holds problems, otherwise nil.
func (v *ValidationError) OrNil() error {
	if len(v.Problems) == 0 {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	parts := make([]string, len(v.Problems))
	for i, p := range v.Problems {
		parts[i] = p.Field + " " + p.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsValidation reports whether err wraps a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
