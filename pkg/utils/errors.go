package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// Pipeline sentinel errors. Item-level failures (ErrInvalidLink) are
// skipped during scans; stage-level failures terminate the run and are
// reported through the workflow state, never raised past the
// orchestrator.
var (
	ErrInvalidLink       = errors.New("invalid link")
	ErrNoJobListings     = errors.New("no job listings found on the page")
	ErrNoCandidates      = errors.New("no job candidates provided for matching")
	ErrNavigationFailed  = errors.New("navigation failed")
	ErrInteractionFailed = errors.New("page interaction failed")
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

func NewTimeoutError(message string) *CustomError {
	return &CustomError{
		Code:    http.StatusRequestTimeout,
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

// NewLocateError returns an error for a pipeline run that produced no
// usable result
func NewLocateError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusUnprocessableEntity,
		Message: "Job locate failed",
		Detail:  detail,
	}
}

func NewAdvisorError(detail string) *CustomError {
	return &CustomError{
		Code:    http.StatusBadGateway,
		Message: "Advisor processing failed",
		Detail:  detail,
	}
}
