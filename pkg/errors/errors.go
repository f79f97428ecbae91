// Package errors maps errors to stable API codes and HTTP statuses. Domain
// errors keep their verbatim messages; anything unrecognized collapses to a
// generic internal error so internals never leak to clients.
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"comedor/domain/catalog"
	"comedor/domain/order"
	"comedor/domain/shared"
	"comedor/domain/user"
)

// ErrorCode is a stable, machine-readable error identifier.
type ErrorCode string

const (
	// Generic codes.
	CodeInternal       ErrorCode = "INTERNAL_ERROR"
	CodeBadRequest     ErrorCode = "BAD_REQUEST"
	CodeUnauthorized   ErrorCode = "UNAUTHORIZED"
	CodeForbidden      ErrorCode = "FORBIDDEN"
	CodeNotFound       ErrorCode = "NOT_FOUND"
	CodeConflict       ErrorCode = "CONFLICT"
	CodeTooManyRequest ErrorCode = "TOO_MANY_REQUESTS"
	CodeValidation     ErrorCode = "VALIDATION_ERROR"

	// Business codes.
	CodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	CodeUserNotActive      ErrorCode = "USER_NOT_ACTIVE"
	CodeEmailExists        ErrorCode = "EMAIL_EXISTS"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeAddressNotFound    ErrorCode = "ADDRESS_NOT_FOUND"
	CodeProductNotFound    ErrorCode = "PRODUCT_NOT_FOUND"
	CodeProductInactive    ErrorCode = "PRODUCT_INACTIVE"
	CodeProductUnavailable ErrorCode = "PRODUCT_UNAVAILABLE"
	CodeCategoryNotFound   ErrorCode = "CATEGORY_NOT_FOUND"
	CodeInsufficientStock  ErrorCode = "INSUFFICIENT_STOCK"
	CodeOrderNotFound      ErrorCode = "ORDER_NOT_FOUND"
	CodeInvalidOrderState  ErrorCode = "INVALID_ORDER_STATE"
)

// AppError pairs an error code with a client-facing message.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatusCode returns the HTTP status for the code.
func (e *AppError) HTTPStatusCode() int {
	switch e.Code {
	case CodeBadRequest, CodeValidation:
		return http.StatusBadRequest
	case CodeUnauthorized, CodeInvalidCredentials:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound, CodeUserNotFound, CodeOrderNotFound,
		CodeProductNotFound, CodeCategoryNotFound, CodeAddressNotFound:
		return http.StatusNotFound
	case CodeConflict, CodeEmailExists:
		return http.StatusConflict
	case CodeTooManyRequest:
		return http.StatusTooManyRequests
	case CodeUserNotActive, CodeProductInactive, CodeProductUnavailable,
		CodeInsufficientStock, CodeInvalidOrderState:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// New creates an error with a code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func BadRequest(message string) *AppError {
	return New(CodeBadRequest, message)
}

func NotFound(message string) *AppError {
	return New(CodeNotFound, message)
}

func Internal(message string) *AppError {
	return New(CodeInternal, message)
}

func TooManyRequests(message string) *AppError {
	return New(CodeTooManyRequest, message)
}

func Validation(message string) *AppError {
	return New(CodeValidation, message)
}

// Is checks whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// sentinelCodes drives the domain-to-API mapping. Order matters only in that
// the first match wins; the sentinels are mutually exclusive.
var sentinelCodes = []struct {
	sentinel error
	code     ErrorCode
}{
	{user.ErrUserNotFound, CodeUserNotFound},
	{user.ErrUserInactive, CodeUserNotActive},
	{user.ErrEmailExists, CodeEmailExists},
	{user.ErrInvalidEmail, CodeValidation},
	{user.ErrInvalidCredentials, CodeInvalidCredentials},
	{user.ErrAddressNotFound, CodeAddressNotFound},
	{user.ErrInvalidUser, CodeValidation},
	{catalog.ErrProductNotFound, CodeProductNotFound},
	{catalog.ErrProductInactive, CodeProductInactive},
	{catalog.ErrProductUnavailable, CodeProductUnavailable},
	{catalog.ErrInsufficientStock, CodeInsufficientStock},
	{catalog.ErrCategoryNotFound, CodeCategoryNotFound},
	{catalog.ErrInvalidProduct, CodeValidation},
	{order.ErrOrderNotFound, CodeOrderNotFound},
	{order.ErrEmptyOrder, CodeValidation},
	{order.ErrInvalidDeliveryMethod, CodeValidation},
	{order.ErrMissingDeliveryAddress, CodeValidation},
	{order.ErrInvalidQuantity, CodeValidation},
	{order.ErrInsufficientStock, CodeInsufficientStock},
	{order.ErrInvalidStateTransition, CodeInvalidOrderState},
	{order.ErrInvalidStatus, CodeValidation},
	{shared.ErrNotFound, CodeNotFound},
	{shared.ErrConflict, CodeConflict},
	{shared.ErrInvalidInput, CodeValidation},
	{shared.ErrForbidden, CodeForbidden},
}

// FromDomain translates a domain error into an AppError. Business errors
// keep their message verbatim; unknown errors become an opaque internal
// error with the cause attached for logging only.
func FromDomain(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	for _, m := range sentinelCodes {
		if errors.Is(err, m.sentinel) {
			return &AppError{Code: m.code, Message: err.Error(), Err: err}
		}
	}

	return &AppError{Code: CodeInternal, Message: "internal server error", Err: err}
}
