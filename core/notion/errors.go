package notion

import "fmt"

// AuthError indicates that the credential was rejected or the target
// database does not exist. It is raised during client verification only.
type AuthError struct {
	// Status is the HTTP status returned by the API.
	Status int
	// Message is the error message reported by the API, if any.
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("notion: credential or database rejected (status %d)", e.Status)
	}
	return fmt.Sprintf("notion: credential or database rejected (status %d): %s", e.Status, e.Message)
}

// APIError is any non-2xx response outside the verification path.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("notion: request failed (status %d)", e.Status)
	}
	return fmt.Sprintf("notion: request failed (status %d): %s", e.Status, e.Message)
}
