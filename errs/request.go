package errs

import (
	"errors"
	"net/http"
)

// ErrMissingRequiredFields rejects an application submission that omits a
// required field. The message is part of the public API contract.
var ErrMissingRequiredFields = errors.New("Missing required fields")

func NewMissingFieldsError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrMissingRequiredFields,
	}
}
