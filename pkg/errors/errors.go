package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Messages returned to callers. Detail beyond these never leaves the service.
const (
	MsgUnauthorized     = "Unauthorized"
	MsgInvalidEmail     = "Invalid email"
	MsgInvalidView      = "Invalid view"
	MsgInvalidTimeframe = "Invalid timeframe"
	MsgUserNotFound     = "User not found"
	MsgInternal         = "Internal server error"
)

// Common application errors
var (
	ErrUnauthorized     = NewUnauthorizedError(MsgUnauthorized)
	ErrInvalidEmail     = NewValidationError("email", MsgInvalidEmail)
	ErrInvalidView      = NewValidationError("view", MsgInvalidView)
	ErrInvalidTimeframe = NewValidationError("timeframe", MsgInvalidTimeframe)
	ErrUserNotFound     = NewNotFoundError("user", MsgUserNotFound)
	ErrInternal         = NewInternalError(MsgInternal, nil)
)

// ValidationError represents a validation failure with field-level details
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// PublicMessage is the message safe to return to a caller
func (e *ValidationError) PublicMessage() string {
	return e.Message
}

// HTTPStatus returns the HTTP status code for this error
func (e *ValidationError) HTTPStatus() int {
	return http.StatusBadRequest
}

// GRPCStatus returns the gRPC status for this error
func (e *ValidationError) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Message)
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	Message  string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// PublicMessage is the message safe to return to a caller
func (e *NotFoundError) PublicMessage() string {
	return e.Error()
}

// HTTPStatus returns the HTTP status code for this error
func (e *NotFoundError) HTTPStatus() int {
	return http.StatusNotFound
}

// GRPCStatus returns the gRPC status for this error
func (e *NotFoundError) GRPCStatus() *status.Status {
	return status.New(codes.NotFound, e.Error())
}

// UnauthorizedError represents a missing or rejected session
type UnauthorizedError struct {
	Message string
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{Message: message}
}

// Error implements the error interface
func (e *UnauthorizedError) Error() string {
	return e.Message
}

// PublicMessage is the message safe to return to a caller
func (e *UnauthorizedError) PublicMessage() string {
	return MsgUnauthorized
}

// HTTPStatus returns the HTTP status code for this error
func (e *UnauthorizedError) HTTPStatus() int {
	return http.StatusUnauthorized
}

// GRPCStatus returns the gRPC status for this error
func (e *UnauthorizedError) GRPCStatus() *status.Status {
	return status.New(codes.Unauthenticated, MsgUnauthorized)
}

// InternalError represents an internal server error with context
type InternalError struct {
	Message string
	Err     error
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *InternalError {
	return &InternalError{
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface
func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *InternalError) Unwrap() error {
	return e.Err
}

// PublicMessage hides the wrapped cause
func (e *InternalError) PublicMessage() string {
	return MsgInternal
}

// HTTPStatus returns the HTTP status code for this error
func (e *InternalError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// GRPCStatus returns the gRPC status for this error
func (e *InternalError) GRPCStatus() *status.Status {
	return status.New(codes.Internal, MsgInternal)
}

// GRPCStatuser interface for errors that can provide gRPC status
type GRPCStatuser interface {
	GRPCStatus() *status.Status
}

// HTTPError is implemented by every error in the taxonomy
type HTTPError interface {
	error
	HTTPStatus() int
	PublicMessage() string
}

// ToHTTP maps any error to a status code and a caller-safe message.
// Errors outside the taxonomy are treated as internal.
func ToHTTP(err error) (int, string) {
	var he HTTPError
	if stderrors.As(err, &he) {
		return he.HTTPStatus(), he.PublicMessage()
	}
	return http.StatusInternalServerError, MsgInternal
}

// ToGRPC converts any error to a gRPC status error, hiding unknown causes.
func ToGRPC(err error) error {
	if err == nil {
		return nil
	}
	var gs GRPCStatuser
	if stderrors.As(err, &gs) {
		return gs.GRPCStatus().Err()
	}
	return status.Error(codes.Internal, MsgInternal)
}
