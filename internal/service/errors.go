package service

import (
	"errors"
	"fmt"
)

// ErrBackendUnavailable covers an unreachable backend and non-200 replies.
var ErrBackendUnavailable = errors.New("backend service unavailable")

// RejectedError is an application-level refusal: HTTP 200 with a status
// other than "success", or a body that is not a JSON envelope.
type RejectedError struct {
	Op      string
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return e.Op + " rejected by backend"
	}
	return fmt.Sprintf("%s rejected by backend: %s", e.Op, e.Message)
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrBackendUnavailable, err)
}
