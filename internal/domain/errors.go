package domain

import (
	"errors"
	"fmt"
	"strings"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// ValidationError reports bad client input. Fields lists the offending
// field names when the failure is about missing values.
type ValidationError struct {
	Field  string
	Fields []string
	Msg    string
	Err    error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	if len(e.Fields) > 0 {
		return "missing fields: " + strings.Join(e.Fields, ", ")
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// ConflictError is a unique-constraint clash, e.g. a taken username.
type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s already exists", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// ReferenceError is a foreign key that points nowhere, or a delete that is
// blocked by rows still referencing the target.
type ReferenceError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ReferenceError) Error() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s is referenced by or references a missing row", e.Resource)
	default:
		return "invalid reference"
	}
}

func (e ReferenceError) Unwrap() error { return e.Err }

type UnauthorizedError struct {
	Msg string
	Err error
}

func (e UnauthorizedError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "unauthorized"
}

func (e UnauthorizedError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsReference(err error) bool {
	var target ReferenceError
	return errors.As(err, &target)
}

func IsUnauthorized(err error) bool {
	var target UnauthorizedError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
