package marketapi

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError describes a failed call. Status is 0 when the request never got a response.
type APIError struct {
	Message string
	Status  int
	URL     string
	Err     error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s %s: %v", e.Message, e.URL, e.Err)
		}
		return fmt.Sprintf("%s %s", e.Message, e.URL)
	}
	return fmt.Sprintf("%s %s: status %d", e.Message, e.URL, e.Status)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func (e *APIError) IsNetwork() bool {
	return e.Status == 0
}

func (e *APIError) IsAuth() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// AsAPIError unwraps err into an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsStatus reports whether err is an APIError with one of the given statuses.
func IsStatus(err error, statuses ...int) bool {
	apiErr, ok := AsAPIError(err)
	if !ok {
		return false
	}
	for _, s := range statuses {
		if apiErr.Status == s {
			return true
		}
	}
	return false
}

func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

func IsAuth(err error) bool {
	return IsStatus(err, http.StatusUnauthorized, http.StatusForbidden)
}
