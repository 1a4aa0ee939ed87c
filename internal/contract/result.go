package contract

import (
	"errors"

	"orgchart/internal/domain"
)

// Result is what a service hands back to the HTTP layer: an outcome, the
// value to render on success and a client-facing message otherwise.
type Result[T any] struct {
	Outcome Outcome
	Value   T
	Message string
	Err     error
}

// OK wraps a successful value.
func OK[T any](v T) Result[T] {
	return Result[T]{Outcome: OutcomeSuccess, Value: v}
}

// Fail builds a failed result from an error, classifying it with OutcomeOf.
func Fail[T any](err error) Result[T] {
	return Result[T]{Outcome: OutcomeOf(err), Message: MessageOf(err), Err: err}
}

// Status is shorthand for StatusFor(op, r.Outcome).
func (r Result[T]) Status(op Operation) int {
	return StatusFor(op, r.Outcome)
}

// OutcomeOf maps a domain error onto the outcome taxonomy. Unknown errors
// are store errors.
func OutcomeOf(err error) Outcome {
	var (
		validation   domain.ValidationError
		notFound     domain.NotFoundError
		conflict     domain.ConflictError
		reference    domain.ReferenceError
		unauthorized domain.UnauthorizedError
	)
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.As(err, &validation):
		return OutcomeMissingFields
	case errors.As(err, &notFound):
		return OutcomeNotFound
	case errors.As(err, &conflict):
		return OutcomeDuplicate
	case errors.As(err, &reference):
		return OutcomeInvalidReference
	case errors.As(err, &unauthorized):
		return OutcomeUnauthorized
	default:
		return OutcomeStoreError
	}
}

// MessageOf returns the text safe to show a client. Store and internal
// errors never leak their cause.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	if OutcomeOf(err) != OutcomeStoreError {
		return err.Error()
	}
	var internal domain.InternalError
	if errors.As(err, &internal) {
		return "internal error"
	}
	return "database error"
}

// RequireFields runs ValidateFields and reports a failure as a
// domain.ValidationError carrying the missing names.
func RequireFields(payload map[string]string, required []string) error {
	v := ValidateFields(payload, required)
	if v.Valid() {
		return nil
	}
	return domain.ValidationError{Msg: "missing fields", Fields: v.Missing}
}
