package deskconf

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no document exists at the resolved path
	ErrNotFound = errors.New("not found")
	// ErrParse is returned when a source cannot be parsed as a document
	ErrParse = errors.New("parse error")
	// ErrSchemaViolation is returned when a present key has the wrong shape or value
	ErrSchemaViolation = errors.New("schema violation")
	// ErrInvalidInput is returned when a caller passes an unusable argument
	ErrInvalidInput = errors.New("invalid input")
)

// FieldError describes a single schema violation at a key path.
// It unwraps to ErrSchemaViolation.
type FieldError struct {
	Path     string
	Expected string
	Got      string
}

func (e *FieldError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Expected)
	}
	return fmt.Sprintf("%s: expected %s, got %s", e.Path, e.Expected, e.Got)
}

func (e *FieldError) Unwrap() error {
	return ErrSchemaViolation
}

// FieldErrors extracts every *FieldError contained in err, which may be
// a single FieldError, a wrapped one, or a tree built with errors.Join.
func FieldErrors(err error) []*FieldError {
	switch e := err.(type) {
	case nil:
		return nil
	case *FieldError:
		return []*FieldError{e}
	case interface{ Unwrap() []error }:
		var out []*FieldError
		for _, inner := range e.Unwrap() {
			out = append(out, FieldErrors(inner)...)
		}
		return out
	default:
		return FieldErrors(errors.Unwrap(err))
	}
}
