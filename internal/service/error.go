package service

import "errors"

type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}

// CodeOf extracts the machine-checkable code from a service error, or
// empty when err is not one.
func CodeOf(err error) string {
	var svcErr Error
	if errors.As(err, &svcErr) {
		return svcErr.Code
	}
	return ""
}
