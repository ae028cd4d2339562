package core

import "github.com/pkg/errors"

// FieldError pins a validation failure to a single input field, named by the
// field's JSON tag as rendered in API responses.
type FieldError struct {
	Field string
	Error string
}

// ValidationError carries per-field failures for bad dashboard input such as
// malformed phone numbers or money amounts out of range. Err may be nil when
// the field errors alone tell the whole story.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{Err: err, Fields: flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// shutdown marks an error as fatal to the process: the server should stop
// serving rather than fail the one request.
type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

// IsShutdown reports whether err (or its cause) asks for a graceful stop.
func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
