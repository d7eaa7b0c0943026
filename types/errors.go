package types

import "fmt"

// APIError represents a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("APIError: %d: %s", e.StatusCode, e.Message)
}

// RemoteError is a service-level rejection reported inside a 2xx JSON body.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}

// InvalidInputError reports a caller mistake such as a non-string target.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}
