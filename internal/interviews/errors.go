package interviews

import "errors"

// ErrMalformedResponse marks model output that could not be decoded into the
// expected JSON shape.
var ErrMalformedResponse = errors.New("malformed llm response")
