package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used for classification with errors.Is. Each concrete error
// type in this package unwraps to exactly one of these.
var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrValueIsInvalid     = errors.New("value is invalid")
	ErrValueIsRequired    = errors.New("value is required")
	ErrConflict           = errors.New("conflict")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNetworkUnavailable = errors.New("network unavailable")
	ErrServerFailure      = errors.New("server failure")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%s", v), "\n", " ")
}

// ObjectNotFoundError indicates that an entity could not be located, either
// locally or by the remote order service.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a value failed validation, including
// illegal order status transitions.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates that a required value is missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ConflictError indicates that the remote service rejected an operation on
// business grounds, e.g. the order was already claimed by another shipper.
// The Message field carries the upstream rejection message when present.
type ConflictError struct {
	Message string
	Cause   error
}

// NewConflictError creates a ConflictError carrying the upstream rejection message.
func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(message string, cause error) *ConflictError {
	return &ConflictError{Message: message, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrConflict, sanitize(e.Message), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrConflict, sanitize(e.Message))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// UnauthorizedError indicates that the current session is no longer valid.
// Callers are expected to clear the session and require re-authentication.
type UnauthorizedError struct {
	Message string
	Cause   error
}

// NewUnauthorizedError creates an UnauthorizedError.
func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{Message: message}
}

// NewUnauthorizedErrorWithCause creates an UnauthorizedError wrapping an underlying cause.
func NewUnauthorizedErrorWithCause(message string, cause error) *UnauthorizedError {
	return &UnauthorizedError{Message: message, Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrUnauthorized, sanitize(e.Message), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrUnauthorized, sanitize(e.Message))
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// NetworkUnavailableError indicates a transport-level failure: the request
// never reached the remote service or no response was received. The outcome
// of the attempted operation is unknown to the client.
type NetworkUnavailableError struct {
	Cause error
}

// NewNetworkUnavailableError creates a NetworkUnavailableError wrapping the transport failure.
func NewNetworkUnavailableError(cause error) *NetworkUnavailableError {
	return &NetworkUnavailableError{Cause: cause}
}

func (e *NetworkUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", ErrNetworkUnavailable, sanitize(e.Cause))
	}
	return ErrNetworkUnavailable.Error()
}

func (e *NetworkUnavailableError) Unwrap() error {
	return ErrNetworkUnavailable
}

// ServerFailureError indicates an unexpected upstream failure (5xx or an
// unparseable response body).
type ServerFailureError struct {
	StatusCode int
	Cause      error
}

// NewServerFailureError creates a ServerFailureError for the given HTTP status code.
func NewServerFailureError(statusCode int) *ServerFailureError {
	return &ServerFailureError{StatusCode: statusCode}
}

// NewServerFailureErrorWithCause creates a ServerFailureError wrapping an underlying cause.
func NewServerFailureErrorWithCause(statusCode int, cause error) *ServerFailureError {
	return &ServerFailureError{StatusCode: statusCode, Cause: cause}
}

func (e *ServerFailureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: status is: %d (cause: %s)", ErrServerFailure, e.StatusCode, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: status is: %d", ErrServerFailure, e.StatusCode)
}

func (e *ServerFailureError) Unwrap() error {
	return ErrServerFailure
}
