package hubspot

import "fmt"

// APIError represents a failed HubSpot API call: either a non-2xx response
// (StatusCode and Body are set) or a transport failure (Err is set).
type APIError struct {
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("hubspot API request failed: %v", e.Err)
	}
	return fmt.Sprintf("hubspot API error (status %d): %s", e.StatusCode, e.Body)
}

// Unwrap supports errors.Is/As chains.
func (e *APIError) Unwrap() error {
	return e.Err
}
