package ecc

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds returned by the engine. Match them with errors.Is; the
// returned errors usually carry extra context around the sentinel.
var (
	ErrNotInvertible   = errors.New("element is not invertible")
	ErrSingularCurve   = errors.New("curve is singular")
	ErrPointNotOnCurve = errors.New("point is not on the curve")
	ErrInvalidScalar   = errors.New("invalid scalar")
	ErrMismatchedCurve = errors.New("points belong to different curves")
	ErrInvalidModulus  = errors.New("modulus must be greater than one")
	ErrFieldTooLarge   = errors.New("field too large to enumerate")
)

// OpError records the group-law operation that failed.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("ecc: %s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func opError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Err: err}
}

// IsCallerError reports whether err was caused by bad input to an otherwise
// valid curve.
func IsCallerError(err error) bool {
	return errors.Is(err, ErrInvalidScalar) ||
		errors.Is(err, ErrMismatchedCurve) ||
		errors.Is(err, ErrPointNotOnCurve) ||
		errors.Is(err, ErrFieldTooLarge)
}

// IsParameterError reports whether err was caused by bad curve or field
// parameters.
func IsParameterError(err error) bool {
	return errors.Is(err, ErrSingularCurve) ||
		errors.Is(err, ErrNotInvertible) ||
		errors.Is(err, ErrInvalidModulus)
}
