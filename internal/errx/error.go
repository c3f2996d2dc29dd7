package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "Something went wrong. Please try again later."
	// RedisErrorMessage describes Redis related failures.
	RedisErrorMessage = "redis operation failed"
	// KafkaErrorMessage describes publish failures towards the notification relay.
	KafkaErrorMessage = "notification relay unavailable"
	// NotFoundMessage is returned for missing content.
	NotFoundMessage = "not found"
	// RateLimitedMessage is returned when a client submits too often.
	RateLimitedMessage = "Too many submissions. Please try again later."
)

// AppError wraps an underlying error with an HTTP status and safe message.
type AppError struct {
	Err     error
	Status  int
	Message string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the provided information.
func New(err error, status int, message string) *AppError {
	return &AppError{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// Validation reports bad client input; the message is shown to the visitor.
func Validation(message string) *AppError {
	return New(nil, http.StatusBadRequest, message)
}

func NotFound(err error) *AppError {
	return New(err, http.StatusNotFound, NotFoundMessage)
}

func RateLimited() *AppError {
	return New(nil, http.StatusTooManyRequests, RateLimitedMessage)
}

// WrapKafka wraps a publish error with a consistent status code and message.
func WrapKafka(err error) error {
	if err == nil {
		return nil
	}
	return New(err, http.StatusBadGateway, KafkaErrorMessage)
}

// From returns the AppError in err's chain, or a 500 wrapper around err.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return New(err, http.StatusInternalServerError, SystemErrorMessage)
}
