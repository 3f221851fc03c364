package browse

import "errors"

var (
	// ErrNotFound is returned when a listing is empty or an object does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidTimestamp is returned when storage reports an unrepresentable upload time.
	ErrInvalidTimestamp = errors.New("invalid upload timestamp")
	// ErrInvalidSize is returned when storage reports a negative object size.
	ErrInvalidSize = errors.New("invalid object size")
	// ErrMissingBody is returned when storage resolves an object without a byte stream.
	ErrMissingBody = errors.New("object body unavailable")
)
