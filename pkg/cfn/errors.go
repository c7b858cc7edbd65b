package cfn

import (
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
)

// HandlerError is the only error type a handler returns. Code is reported to
// CloudFormation as the event's errorCode.
type HandlerError struct {
	Code    types.HandlerErrorCode
	Message string
	Err     error
}

func (e *HandlerError) Error() string {
	if e.Message == "" && e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// NewError wraps err under code. The message defaults to err's text.
func NewError(code types.HandlerErrorCode, err error) *HandlerError {
	herr := &HandlerError{Code: code, Err: err}
	if err != nil {
		herr.Message = err.Error()
	}
	return herr
}

// Errorf builds a HandlerError with a formatted message and no cause.
func Errorf(code types.HandlerErrorCode, format string, args ...any) *HandlerError {
	return &HandlerError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ErrorCode extracts the handler error code from err. Errors that did not pass
// through a handler boundary are internal failures.
func ErrorCode(err error) types.HandlerErrorCode {
	if err == nil {
		return ""
	}
	var herr *HandlerError
	if errors.As(err, &herr) {
		return herr.Code
	}
	return types.HandlerErrorCodeInternalFailure
}

// IsCode reports whether err carries the given handler error code.
func IsCode(err error, code types.HandlerErrorCode) bool {
	return err != nil && ErrorCode(err) == code
}
