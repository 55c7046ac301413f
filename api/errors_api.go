package api

import "fmt"

// RequestError ties a failed request to the operation and board
// key it was for. It unwraps to the underlying cause.
type RequestError struct {
	Op  string
	Key string
	Err error
}

func newRequestError(op, key string, err error) *RequestError {
	return &RequestError{Op: op, Key: key, Err: err}
}

func (e *RequestError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
