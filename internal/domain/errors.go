package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrIncomplete    = errors.New("bundle incomplete")
	ErrExecution     = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindExecution     ErrorKind = "execution"
	KindSubmission    ErrorKind = "submission"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// ConstraintKind classifies a rejected selection change.
type ConstraintKind string

const (
	ConstraintMaxReached      ConstraintKind = "max_reached"
	ConstraintDuplicate       ConstraintKind = "duplicate_not_allowed"
	ConstraintNoChange        ConstraintKind = "no_change"
	ConstraintUnknownCategory ConstraintKind = "unknown_category"
	ConstraintUnknownProduct  ConstraintKind = "unknown_product"
	ConstraintIncomplete      ConstraintKind = "incomplete"
)

// ConstraintError is a user-facing rejection. Message is safe to show as-is.
type ConstraintError struct {
	Kind     ConstraintKind
	Category string
	Product  string
	Message  string
}

func (e *ConstraintError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

// Is lets errors.Is(err, ErrIncomplete) match incomplete-bundle rejections.
func (e *ConstraintError) Is(target error) bool {
	return e != nil && e.Kind == ConstraintIncomplete && target == ErrIncomplete
}

// IsConstraint reports whether err is a ConstraintError of the given kind.
func IsConstraint(err error, kind ConstraintKind) bool {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}
