package core

import "github.com/pkg/errors"

// FieldError is a rejected request or seed field, keyed by its JSON name.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is returned by services for input that passed struct validation
// but breaks a domain rule, such as a duplicate student email or an unknown ordering field.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{Err: err, Fields: flds}
}

func (err ValidationError) Error() string {
	switch {
	case err.Err != nil:
		return err.Err.Error()
	case len(err.Fields) > 0:
		return err.Fields[0].Field + ": " + err.Fields[0].Error
	}
	return ""
}

// FieldMap returns {field: message}, the shape of the API's 400 bodies.
// The first message wins when a field is repeated.
func (err ValidationError) FieldMap() map[string]string {
	if len(err.Fields) == 0 {
		return nil
	}
	fldErrs := make(map[string]string, len(err.Fields))
	for _, fErr := range err.Fields {
		if _, ok := fldErrs[fErr.Field]; !ok {
			fldErrs[fErr.Field] = fErr.Error
		}
	}
	return fldErrs
}

// shutdown asks the API server to stop gracefully, e.g. after the database went away.
type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

// IsShutdown reports whether a shutdown error sits at the root of err.
func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
