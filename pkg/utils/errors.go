package utils

import (
	"fmt"
	"net/http"
	"strings"
)

// CustomError represents a custom application error
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func (e *CustomError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// Common error constructors
func NewBadRequestError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func NewInternalServerError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

func NewValidationError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		Detail:  detail,
	}
}

// NewQuotaExceededError returns the 429-style error raised when a daily cap is hit
func NewQuotaExceededError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusTooManyRequests,
		Message: message,
	}
}

// NewServiceUnavailableError covers transient dependency failures (quota store unreachable)
func NewServiceUnavailableError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusServiceUnavailable,
		Message: "Service temporarily unavailable",
		Detail:  detail,
	}
}

func NewAIProviderError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadGateway,
		Message: "AI processing failed",
		Detail:  detail,
	}
}

// IsRateLimitSignal reports whether an AI error message should map to a
// 429-equivalent response instead of a generic server error. Callers treat
// the substrings "quota" and "rate limit" as a contractual signal.
func IsRateLimitSignal(message string) bool {
	lower := strings.ToLower(message)
	return strings.Contains(lower, "quota") || strings.Contains(lower, "rate limit")
}
