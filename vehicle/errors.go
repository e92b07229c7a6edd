package vehicle

import "errors"

// Messages returned to API clients.
const (
	MsgMakeRequired      = "Make parameter is required"
	MsgMakeModelRequired = "Make and model parameters are required"
	MsgNoMatch           = "No matching vehicles found"
)

// ValidationError reports a missing or empty required parameter.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports a well-formed query with no matching records.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
