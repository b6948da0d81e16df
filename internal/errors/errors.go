package errors

import "fmt"

// ErrCode represents an error code
type ErrCode string

const (
	ErrCodeTransport    ErrCode = "TRANSPORT_ERROR"
	ErrCodeAPI          ErrCode = "API_ERROR"
	ErrCodeParse        ErrCode = "PARSE_ERROR"
	ErrCodeDeleteFailed ErrCode = "DELETE_FAILED"
)

// AppError represents an application error
type AppError struct {
	Code    ErrCode
	Message string
	Err     error
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

// NewTransportError creates a new transport error
func NewTransportError(message string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeTransport,
		Message: message,
		Err:     err,
	}
}

// NewAPIError creates a new API error
func NewAPIError(message string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeAPI,
		Message: message,
		Err:     err,
	}
}

// NewParseError creates a new parse error
func NewParseError(message string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeParse,
		Message: message,
		Err:     err,
	}
}

// NewDeleteFailedError creates a new delete failure error
func NewDeleteFailedError(message string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeDeleteFailed,
		Message: message,
		Err:     err,
	}
}

// IsTransport checks if the error is a transport error
func IsTransport(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == ErrCodeTransport
	}
	return false
}

// IsAPI checks if the error is an API error
func IsAPI(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == ErrCodeAPI
	}
	return false
}

// IsParse checks if the error is a parse error
func IsParse(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == ErrCodeParse
	}
	return false
}

// IsDeleteFailed checks if the error is a delete failure
func IsDeleteFailed(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code == ErrCodeDeleteFailed
	}
	return false
}
