package resumes

import "errors"

// ErrInvalidInput marks caller contract violations caught inside the service.
var ErrInvalidInput = errors.New("invalid input")
