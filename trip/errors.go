package trip

import (
	"errors"
	"fmt"
	"strconv"
)

// ValidationError is returned when a mutation would break an invariant of the
// store. The store the mutation was applied to is left unchanged.
type ValidationError struct {
	Op     string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// NotFoundError is returned when a mutation references a trip, category or
// date that does not exist.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

func invalid(op, format string, args ...any) error {
	return &ValidationError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

func notFound(kind, key string) error {
	return &NotFoundError{Kind: kind, Key: key}
}

func itoa(i int) string { return strconv.Itoa(i) }

// IsValidation reports whether err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
