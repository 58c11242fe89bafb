package datasource

import (
	"errors"
	"fmt"
)

var (
	ErrMissingColumn = errors.New("missing column")
	ErrInvalidValue  = errors.New("invalid value")
	ErrDuplicateName = errors.New("duplicate name")
)

// LoadError reports a dataset that could not be loaded.
type LoadError struct {
	Location string
	Line     int
	Err      error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Location, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Location, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
