package upstream

import (
	"errors"
	"fmt"
)

// ErrNotFound signals the upstream reported the requested item does not exist.
var ErrNotFound = errors.New("upstream resource not found")

// StatusError signals an unexpected non-success upstream status.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected upstream status %d", e.Status)
}

// IsNotFound reports whether err indicates an upstream not-found outcome.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
