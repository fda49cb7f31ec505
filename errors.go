package decimalcql

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("decimalcql")

// Error classes for the individual failure modes. Callers can match
// them through any wrapping with Class.Has.
var (
	// ErrTruncatedInput is returned by Decode when the payload is
	// shorter than the 5-byte minimum (4 scale bytes plus at least
	// one unscaled byte).
	ErrTruncatedInput = errs.Class("truncated input")

	// ErrNegativeScale is returned by Decode when the payload's
	// scale is negative. Such values cannot be represented without
	// scaling the unscaled integer up, so they are rejected.
	ErrNegativeScale = errs.Class("negative scale")

	// ErrScaleOutOfRange is returned when the scale exceeds
	// MaxScale.
	ErrScaleOutOfRange = errs.Class("scale out of range")

	// ErrMagnitudeOverflow is returned when the unscaled magnitude
	// exceeds the 96-bit maximum.
	ErrMagnitudeOverflow = errs.Class("magnitude overflow")
)
