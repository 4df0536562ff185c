package shrink

import (
	serrors "github.com/dargueta/shrink/errors"
)

// ShrinkError is the interface implemented by every error this module returns.
type ShrinkError = serrors.ShrinkError

var ErrEmptyInput = serrors.ErrEmptyInput
var ErrUnsupportedContainer = serrors.ErrUnsupportedContainer
var ErrUnsupportedKind = serrors.ErrUnsupportedKind
var ErrMissingCode = serrors.ErrMissingCode
var ErrCodeTooLong = serrors.ErrCodeTooLong
var ErrInvalidArgument = serrors.ErrInvalidArgument
var ErrIOFailed = serrors.ErrIOFailed
