package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrDatabaseQuery = errors.New("database query failed")

// NewStorageError wraps a store-level failure. The store's own message is
// surfaced to the caller: silently losing a write (e.g. a membership
// application) is worse than leaking a constraint name.
func NewStorageError(operation string, cause error) *ApiErr {
	wrapped := ErrDatabaseQuery
	if cause != nil {
		wrapped = errors.New(cause.Error())
	}
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        wrapped,
		Details:    fmt.Sprintf("Failed to %s", operation),
		Cause:      cause,
	}
}
