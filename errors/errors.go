package errors

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ShrinkError is an error carrying one of the module's error codes, with a
// customizable message.
type ShrinkError interface {
	error
	Code() Code
	WithMessage(message string) ShrinkError
	Wrap(err error) ShrinkError
}

// baseError is the root of every error chain. Sentinels are values of this type
// so they compare equal with errors.Is.
type baseError Code

var ErrEmptyInput = New(EmptyInput)
var ErrUnsupportedContainer = New(UnsupportedContainer)
var ErrUnsupportedKind = New(UnsupportedKind)
var ErrMissingCode = New(MissingCode)
var ErrCodeTooLong = New(CodeTooLong)
var ErrInvalidArgument = New(InvalidArgument)
var ErrIOFailed = New(IOFailed)

// New returns the sentinel [ShrinkError] for a code, using the code's default
// message.
func New(code Code) ShrinkError {
	return baseError(code)
}

func (e baseError) Error() string {
	return StrError(Code(e))
}

func (e baseError) Code() Code {
	return Code(e)
}

func (e baseError) WithMessage(message string) ShrinkError {
	return customError{
		code:          Code(e),
		message:       fmt.Sprintf("%s: %s", e.Error(), message),
		originalError: e,
	}
}

func (e baseError) Wrap(err error) ShrinkError {
	return customError{
		code:          Code(e),
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customError struct {
	code          Code
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a string
// describing the error.
func (e customError) Error() string {
	return e.message
}

func (e customError) Code() Code {
	return e.code
}

func (e customError) WithMessage(message string) ShrinkError {
	return customError{
		code:          e.code,
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customError) Wrap(err error) ShrinkError {
	return customError{
		code:          e.code,
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customError) Unwrap() error {
	return e.originalError
}

// CodeOf returns the code of the first [ShrinkError] in err's chain. Errors from
// outside this module report [IOFailed]; nil reports [OK].
func CodeOf(err error) Code {
	if err == nil {
		return OK
	}
	var shrinkErr ShrinkError
	if errors.As(err, &shrinkErr) {
		return shrinkErr.Code()
	}
	return IOFailed
}
