package dto

import (
	"fmt"
	"time"

	"bizmanager/pkg/utils"
)

// FieldError marks a request field whose text could not be parsed
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// assign overwrites dst when the request carried the field
func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// assignPtr is assign for optional model columns
func assignPtr[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func parseDateTime(field, value string) (time.Time, error) {
	t, err := utils.ParseDateTime(value)
	if err != nil {
		return time.Time{}, &FieldError{Field: field, Err: err}
	}
	return t, nil
}

func parseOptionalDateTime(field string, value *string) (*time.Time, error) {
	t, err := utils.ParseOptionalDateTime(value)
	if err != nil {
		return nil, &FieldError{Field: field, Err: err}
	}
	return t, nil
}

func parseOptionalDate(field string, value *string) (*time.Time, error) {
	t, err := utils.ParseOptionalDate(value)
	if err != nil {
		return nil, &FieldError{Field: field, Err: err}
	}
	return t, nil
}

// updateDateTime applies a datetime update only when the field carries text
func updateDateTime(dst **time.Time, field string, value *string) error {
	t, err := parseOptionalDateTime(field, value)
	if err != nil {
		return err
	}
	if t != nil {
		*dst = t
	}
	return nil
}

func updateDate(dst **time.Time, field string, value *string) error {
	t, err := parseOptionalDate(field, value)
	if err != nil {
		return err
	}
	if t != nil {
		*dst = t
	}
	return nil
}
