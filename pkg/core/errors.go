package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrInvalidRuleFormat = errors.New("invalid rule format")
	ErrOutOfBounds       = errors.New("out of bounds")
)

// Error wraps setup-time failures. Kind is one of the Err* sentinels so callers
// can match with errors.Is.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

// InvalidParameterf builds an ErrInvalidParameter error.
func InvalidParameterf(format string, args ...any) error {
	return &Error{Kind: ErrInvalidParameter, Msg: fmt.Sprintf(format, args...)}
}

// InvalidRuleFormatf builds an ErrInvalidRuleFormat error.
func InvalidRuleFormatf(format string, args ...any) error {
	return &Error{Kind: ErrInvalidRuleFormat, Msg: fmt.Sprintf(format, args...)}
}

// OutOfBoundsf builds an ErrOutOfBounds error.
func OutOfBoundsf(format string, args ...any) error {
	return &Error{Kind: ErrOutOfBounds, Msg: fmt.Sprintf(format, args...)}
}
