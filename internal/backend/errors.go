package backend

import (
	"errors"
	"fmt"
)

// ErrUnreachable wraps transport-level failures (DNS, refused connection, timeout).
var ErrUnreachable = errors.New("backend unreachable")

// StatusError reports a backend reply with an HTTP status other than 200.
type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s returned status %d", e.Endpoint, e.Code)
}

// IsUnavailable reports whether err means the backend could not serve the
// request at all: unreachable or a non-200 reply.
func IsUnavailable(err error) bool {
	var se *StatusError
	return errors.Is(err, ErrUnreachable) || errors.As(err, &se)
}
