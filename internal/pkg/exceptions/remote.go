package exceptions

import (
	"errors"
	"fmt"
	"net/http"
)

// NetworkFailure means the Medora backend could not be reached or did not
// answer in time. No response status is available.
type NetworkFailure struct {
	Method string
	Path   string
	Err    error
}

func (e *NetworkFailure) Error() string {
	return fmt.Sprintf("network failure on %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *NetworkFailure) Unwrap() error {
	return e.Err
}

// RequestRejected means the backend answered with a non-2xx status.
// Message is the backend's own error text and may be empty.
type RequestRejected struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *RequestRejected) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s rejected with status %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("%s %s rejected with status %d: %s", e.Method, e.Path, e.Status, e.Message)
}

func IsNetworkFailure(err error) bool {
	var netErr *NetworkFailure
	return errors.As(err, &netErr)
}

func AsRequestRejected(err error) (*RequestRejected, bool) {
	var rejected *RequestRejected
	if errors.As(err, &rejected) {
		return rejected, true
	}
	return nil, false
}

// IsAuthExpired reports a rejection that means the bearer token is no
// longer accepted. Callers must log the session out.
func IsAuthExpired(err error) bool {
	rejected, ok := AsRequestRejected(err)
	return ok && rejected.Status == http.StatusUnauthorized
}

func IsRemoteNotFound(err error) bool {
	rejected, ok := AsRequestRejected(err)
	return ok && rejected.Status == http.StatusNotFound
}

// UserMessage maps a remote error to the text shown in a notification.
// A rejection carrying its own message wins over the fallback.
func UserMessage(err error, networkMessage, rejectedFallback string) string {
	if rejected, ok := AsRequestRejected(err); ok {
		if rejected.Message != "" {
			return rejected.Message
		}
		return rejectedFallback
	}
	if IsNetworkFailure(err) {
		return networkMessage
	}
	return rejectedFallback
}
