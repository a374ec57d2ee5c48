package dspace

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned when a Config cannot be used to build a
	// client. It is always raised before any network activity.
	ErrInvalidConfig = errors.New("invalid dspace config")

	// ErrInvalidContentType is returned for a content type other than "json"
	// or "xml". It also matches ErrInvalidConfig.
	ErrInvalidContentType = fmt.Errorf("%w: unsupported content type", ErrInvalidConfig)

	// ErrInvalidRequest is returned when a request descriptor or its inputs
	// are malformed.
	ErrInvalidRequest = errors.New("invalid dspace request")

	// ErrDecode is matched by every DecodeError.
	ErrDecode = errors.New("failed to decode dspace response")
)

// StatusError is returned when the DSpace API answers with a non-2xx status.
type StatusError struct {
	Code   int
	Reason string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("dspace API returned status %d: %s", e.Code, e.Reason)
}

// DecodeError wraps a failure to parse a response body as the requested
// content type.
type DecodeError struct {
	ContentType ContentType
	Err         error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s response: %v", e.ContentType, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports ErrDecode as a match so callers need not type-assert.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}
