package internal

import (
	"errors"
	"fmt"
)

// Error kinds. Every extraction failure matches exactly one of them through errors.Is.
var (
	ErrNotRecognizedContainer         = errors.New("not a recognized mach-o container")
	ErrUnsupportedArchitecture        = errors.New("unsupported architecture")
	ErrRequestedSliceUnavailable      = errors.New("requested architecture slice unavailable")
	ErrSectionNotFound                = errors.New("section not found")
	ErrSelfImageUnavailable           = errors.New("executable image of the running process unavailable")
	ErrHostArchitectureUndeterminable = errors.New("host architecture undeterminable")
)

// ExtractErr reports why a section could not be extracted.
type ExtractErr struct {
	Kind   error  // One of the Err* kinds
	Detail string // Optional context, e.g. the offending offset
	cause  error
}

// NewExtractErr returns an error of the given kind.
func NewExtractErr(kind error, format string, a ...interface{}) *ExtractErr {
	return &ExtractErr{
		Kind:   kind,
		Detail: fmt.Sprintf(format, a...),
	}
}

// WrapExtractErr returns an error of the given kind caused by err.
func WrapExtractErr(kind error, err error, format string, a ...interface{}) *ExtractErr {
	e := NewExtractErr(kind, format, a...)
	e.cause = err
	return e
}

func (e *ExtractErr) Error() string {
	msg := e.Kind.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Is reports whether target is the kind of e.
func (e *ExtractErr) Is(target error) bool {
	return e.Kind == target
}

func (e *ExtractErr) Unwrap() error {
	return e.cause
}
