package core

import (
	"testing"

	"github.com/pkg/errors"
)

func TestValidationErrorMessage(t *testing.T) {
	verr := NewValidationError(errors.New("invalid input"), FieldError{Field: "phone", Error: "please enter a valid phone number (10 digits)"})
	if verr.Error() != "invalid input" {
		t.Errorf("Error() = %q; want %q", verr.Error(), "invalid input")
	}

	fieldsOnly := NewValidationError(nil, FieldError{Field: "total_fee", Error: "amount must not be negative"})
	if fieldsOnly.Error() != "" {
		t.Errorf("Error() = %q; want empty for nil Err", fieldsOnly.Error())
	}
	if flds := fieldsOnly.(*ValidationError).Fields; len(flds) != 1 || flds[0].Field != "total_fee" {
		t.Errorf("Fields = %v; want single total_fee entry", flds)
	}
}

func TestIsShutdown(t *testing.T) {
	err := NewShutdownError("store unreachable")
	if !IsShutdown(err) {
		t.Error("IsShutdown() = false for a shutdown error")
	}
	if !IsShutdown(errors.Wrap(err, "pinging store")) {
		t.Error("IsShutdown() = false for a wrapped shutdown error")
	}
	if IsShutdown(errors.New("store unreachable")) {
		t.Error("IsShutdown() = true for a plain error")
	}
}
