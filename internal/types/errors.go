package types

import (
	"errors"
	"fmt"
)

// ErrTargetExists is returned when a rename target appeared after planning.
var ErrTargetExists = errors.New("target already exists")

// ErrInvalidPath is returned when the target directory cannot be used
type ErrInvalidPath struct {
	Path   string
	Reason string
}

func (e ErrInvalidPath) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.Path, e.Reason)
}

// ErrInvalidConvention is returned for an unknown delimiter convention
type ErrInvalidConvention struct {
	Value string
}

func (e ErrInvalidConvention) Error() string {
	return fmt.Sprintf("unknown delimiter convention %q (want 1-5 or square, round, fullwidth, dot, none)", e.Value)
}

// ErrInvalidName is returned when a series name or season label cannot be used in a filename
type ErrInvalidName struct {
	Field string
	Value string
}

func (e ErrInvalidName) Error() string {
	return fmt.Sprintf("%s %q contains characters not allowed in filenames", e.Field, e.Value)
}
