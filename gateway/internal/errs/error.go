package errs

import (
	"fmt"
)

// DeclaredError is a failure a downstream service reported with an explicit
// status code, as opposed to a transport-level failure. Adapters return it
// for any >=400 response they can classify; every other non-nil error a
// port call yields is treated as a transport failure.
type DeclaredError struct {
	Code    int
	Message string
}

func New(code int, message string) *DeclaredError {
	return &DeclaredError{Code: code, Message: message}
}

func (e *DeclaredError) Error() string {
	return fmt.Sprintf("downstream status %d: %s", e.Code, e.Message)
}
