package errors

import "fmt"

// ErrorCode represents a brandloom error code.
type ErrorCode string

const (
	ErrInvalidRequest  ErrorCode = "INVALID_REQUEST"  // 400
	ErrNotFound        ErrorCode = "NOT_FOUND"        // 404
	ErrBrandIncomplete ErrorCode = "BRAND_INCOMPLETE" // 422
	ErrContentTooLong  ErrorCode = "CONTENT_TOO_LONG" // 413
	ErrInternal        ErrorCode = "INTERNAL"         // 500
)

// Error represents a structured error with code, status, and details.
type Error struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a 400 error for invalid request parameters.
func NewInvalidRequest(msg string) *Error {
	return &Error{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewNotFound creates a 404 error for a missing brand or content piece.
func NewNotFound(kind, id string) *Error {
	return &Error{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("%s not found: %s", kind, id),
		Details: map[string]any{"kind": kind, "id": id},
	}
}

// NewBrandIncomplete creates a 422 error listing unfinished setup
// steps.
func NewBrandIncomplete(problems []string) *Error {
	return &Error{
		Code:    ErrBrandIncomplete,
		Status:  422,
		Message: fmt.Sprintf("brand setup incomplete: %v", problems),
		Details: map[string]any{"problems": problems},
	}
}

// NewContentTooLong creates a 413 error when content exceeds a
// platform's posting limit.
func NewContentTooLong(platform string, max, actual int) *Error {
	return &Error{
		Code:    ErrContentTooLong,
		Status:  413,
		Message: fmt.Sprintf("content exceeds %s limit: %d chars (max %d)", platform, actual, max),
		Details: map[string]any{"platform": platform, "max_chars": max, "actual_chars": actual},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
func NewInternal(err error) *Error {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &Error{
		Code:    ErrInternal,
		Status:  500,
		Message: msg,
	}
}

// Is checks if an error is an Error with the given code.
func Is(err error, code ErrorCode) bool {
	if e, ok := err.(*Error); ok {
		return e.Code == code
	}
	return false
}
