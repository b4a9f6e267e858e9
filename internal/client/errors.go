package client

import (
	"fmt"

	"github.com/sbilibin2017/tweet-board/internal/validation"
)

// Error codes returned by the API, plus UNKNOWN_ERROR for failures that carry none.
const (
	CodeValidationError     = "VALIDATION_ERROR"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeBadRequest          = "BAD_REQUEST"
	CodeInternalServerError = "INTERNAL_SERVER_ERROR"
	CodeTooManyRequests     = "TOO_MANY_REQUESTS"
	CodeUnknownError        = "UNKNOWN_ERROR"
)

// UnknownErrorMessage is shown when a failure has no usable message.
const UnknownErrorMessage = "An unknown error has occurred. Please try again!"

// RPCError is a failed API call.
type RPCError struct {
	Code    string
	Message string
	Status  int // HTTP status, 0 when the request never got a response
	Issues  []validation.Violation
	Err     error // transport or decoding cause, if any
}

func (e *RPCError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *RPCError) Unwrap() error { return e.Err }

func unknownError(status int, err error) *RPCError {
	return &RPCError{Code: CodeUnknownError, Message: UnknownErrorMessage, Status: status, Err: err}
}

// MessageOf returns the user-facing message of err: the server message for an
// *RPCError, UnknownErrorMessage otherwise.
func MessageOf(err error) string {
	if rpcErr, ok := AsRPCError(err); ok && rpcErr.Message != "" {
		return rpcErr.Message
	}
	return UnknownErrorMessage
}
