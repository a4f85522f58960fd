package domain

import "fmt"

type ErrorCode string

const (
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

type AppError struct {
	Code    ErrorCode
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

var (
	ErrEntryNotFound = NewAppError(ErrCodeNotFound, "no such entry")
)

func NewDatabaseError(operation string, err error) *AppError {
	return NewAppError(ErrCodeInternal, fmt.Sprintf("database %s failed: %v", operation, err))
}

type ErrorResponse struct {
	Error struct {
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	} `json:"error"`
}

func NewErrorResponse(err *AppError) ErrorResponse {
	var resp ErrorResponse
	resp.Error.Code = err.Code
	resp.Error.Message = err.Message
	return resp
}
