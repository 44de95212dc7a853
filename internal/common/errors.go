package common

import (
	"errors"
	"fmt"
	"strings"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Error codes
const (
	CodeConfiguration    = "CONFIG_ERROR"
	CodeValidation       = "VALIDATION_ERROR"
	CodeTemplateNotFound = "TEMPLATE_NOT_FOUND"
	CodeNoRecords        = "NO_RECORDS"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeInternal         = "INTERNAL_ERROR"
)

// Request-level failure classes. Match with errors.Is.
var (
	ErrConfiguration    = errors.New("configuration error")
	ErrValidation       = errors.New("validation failed")
	ErrTemplateNotFound = errors.New("template not found")
	ErrNoRecords        = errors.New("no records found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInternal         = errors.New("internal error")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func ConfigurationError(format string, args ...any) error {
	return NewAppError(CodeConfiguration, fmt.Sprintf(format, args...), ErrConfiguration)
}

func ValidationFailure(format string, args ...any) error {
	return NewAppError(CodeValidation, fmt.Sprintf(format, args...), ErrValidation)
}

func TemplateNotFoundError(format string, args ...any) error {
	return NewAppError(CodeTemplateNotFound, fmt.Sprintf(format, args...), ErrTemplateNotFound)
}

func NoRecordsError(format string, args ...any) error {
	return NewAppError(CodeNoRecords, fmt.Sprintf(format, args...), ErrNoRecords)
}

func InvalidInputError(format string, args ...any) error {
	return NewAppError(CodeInvalidInput, fmt.Sprintf(format, args...), ErrInvalidInput)
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// ErrorCode returns the AppError code found in err's chain, or CodeInternal.
func ErrorCode(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeInternal
}

// UserMessage renders err for the "message" key of an error result.
// AppErrors contribute only their message; context added by wrapping is kept.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ae *AppError
	if !errors.As(err, &ae) {
		return err.Error()
	}
	full := err.Error()
	own := ae.Error()
	if prefix, ok := strings.CutSuffix(full, own); ok && prefix != "" {
		return prefix + ae.Message
	}
	return ae.Message
}
