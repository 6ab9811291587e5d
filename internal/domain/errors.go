package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy surfaced to the user. Local validation failures never reach
// the network; only the HTTP layer produces the transport-level errors.
var (
	ErrEmptyInput        = errors.New("please enter a URL to analyze")
	ErrInvalidURL        = errors.New("please enter a valid URL")
	ErrServerUnreachable = errors.New("no response from server, please check if the backend is running")
	ErrServerFailure     = errors.New("server error, please try again later")
	ErrEmptyResponse     = errors.New("received empty response from server")
)

// APIError carries a structured error message reported by the backend in an
// {error: string} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Error: %s", e.Message)
}
