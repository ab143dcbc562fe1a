package form

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSaving       = errors.New("form is saving")
	ErrSubmitted    = errors.New("form already submitted")
	ErrClosed       = errors.New("form is closed")
	ErrUnknownField = errors.New("unknown field")
)

// ValidationError lists the offending fields of a rejected submission.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}

	return fmt.Sprintf("validation failed: %s: %s", strings.Join(e.Fields, ", "), e.Reason)
}

// IsValidation reports whether err carries a *ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
