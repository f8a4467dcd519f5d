package chat_errors

import "errors"

// Operation error codes, surfaced to callable clients and mapped to
// HTTP statuses for the HTTP-style operations.
const (
	CodeInvalidArgument = "invalid-argument"
	CodeUnknown         = "unknown"
)

// Common errors
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// OpError is the failure shape of every operation boundary: a typed code
// plus a human-readable detail, optionally wrapping a store error.
type OpError struct {
	Code    string
	Message string
	Err     error
}

func (e *OpError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func InvalidArgument(message string) *OpError {
	return &OpError{Code: CodeInvalidArgument, Message: message}
}

func Unknown(message string, err error) *OpError {
	return &OpError{Code: CodeUnknown, Message: message, Err: err}
}

// CodeOf extracts the operation code from err, defaulting to unknown
// for anything that is not an OpError.
func CodeOf(err error) string {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr.Code
	}
	return CodeUnknown
}
