package advisor

import "errors"

var (
	// ErrUnavailable indicates the model server is unreachable.
	ErrUnavailable = errors.New("advisor server unavailable")

	// ErrTimeout indicates the advisory request exceeded its timeout.
	ErrTimeout = errors.New("advisor request timed out")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("advisor retry attempts exhausted")
)
