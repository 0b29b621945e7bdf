package pricing

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Code    string
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(resource, id string) error {
	return &NotFoundError{
		Code:    "notFound",
		Message: fmt.Sprintf("%s %s not found", resource, id),
	}
}

// IsNotFound reports whether err is a NotFoundError. Handlers use it to map
// unknown cleaners to a 404 instead of a 500.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
