package model

import (
	"errors"
	"fmt"
)

var (
	ErrValidation      = errors.New("validation error")       // 400
	ErrSessionNotFound = errors.New("session not found")      // 404
	ErrProductNotFound = errors.New("product not found")      // 404
	ErrOrderNotFound   = errors.New("order not found")        // 404
	ErrStaleResponse   = errors.New("stale response")         // 409
	ErrRequestFailed   = errors.New("backend request failed") // 502
	ErrInvalidEvent    = errors.New("invalid event")
)

// RequestError is a failed backend call. Payload is the backend error body, kept opaque.
type RequestError struct {
	Op         string
	StatusCode int
	Payload    []byte
	Err        error
}

func (e *RequestError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v: %v", e.Op, ErrRequestFailed, e.Err)
	case len(e.Payload) > 0:
		return fmt.Sprintf("%s: %v: status %d: %s", e.Op, ErrRequestFailed, e.StatusCode, e.Payload)
	default:
		return fmt.Sprintf("%s: %v: status %d", e.Op, ErrRequestFailed, e.StatusCode)
	}
}

func (e *RequestError) Is(target error) bool { return target == ErrRequestFailed }

func (e *RequestError) Unwrap() error { return e.Err }
