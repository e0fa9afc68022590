package errors

import (
	stderrors "errors"
	"fmt"
)

// PlatformError is an error carrying an ErrorCode and optional context.
// All errors created by this package implement it.
type PlatformError interface {
	error
	Code() ErrorCode
	Context() map[string]interface{}
	Unwrap() error
}

type platformError struct {
	code    ErrorCode
	message string
	context map[string]interface{}
	cause   error
}

// Error returns the message, followed by the cause when one is wrapped.
func (e *platformError) Error() string {
	if e.cause == nil {
		return e.message
	}
	return fmt.Sprintf("%s: %v", e.message, e.cause)
}

func (e *platformError) Code() ErrorCode {
	return e.code
}

func (e *platformError) Context() map[string]interface{} {
	return e.context
}

func (e *platformError) Unwrap() error {
	return e.cause
}

// New creates a PlatformError with the given code and message.
//
//nolint:ireturn // PlatformError is returned as error by design.
func New(code ErrorCode, message string) error {
	return &platformError{code: code, message: message}
}

// Newf creates a PlatformError with a formatted message.
//
//nolint:ireturn // PlatformError is returned as error by design.
func Newf(code ErrorCode, format string, args ...interface{}) error {
	return &platformError{code: code, message: fmt.Sprintf(format, args...)}
}

// Wrap wraps err with a code and message. It returns nil when err is nil.
//
//nolint:ireturn // PlatformError is returned as error by design.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &platformError{code: code, message: message, cause: err}
}

// WrapWithContext wraps err with a code, message and key/value context.
// It returns nil when err is nil.
//
//nolint:ireturn // PlatformError is returned as error by design.
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) error {
	if err == nil {
		return nil
	}
	return &platformError{code: code, message: message, context: ctx, cause: err}
}

// GetCode returns the code of the first PlatformError in err's chain,
// or CodeUnknown when there is none.
func GetCode(err error) ErrorCode {
	var pe PlatformError
	if stderrors.As(err, &pe) {
		return pe.Code()
	}
	return CodeUnknown
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code ErrorCode) bool {
	return err != nil && GetCode(err) == code
}

// Is re-exports errors.Is so callers need a single errors import.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As re-exports errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Unwrap re-exports errors.Unwrap.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}
