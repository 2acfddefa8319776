package journal

import (
	"errors"
	"fmt"
)

// ErrEmptyDescription is returned when the submitted description is blank.
var ErrEmptyDescription = errors.New("description is empty")

// ErrInvalidFormat matches every *FormatError via errors.Is.
var ErrInvalidFormat = errors.New("invalid description format")

// ErrUnknownType matches every *UnknownTypeError via errors.Is.
var ErrUnknownType = errors.New("unknown entry type")

// ErrNoMirror is returned by Store.Save when persistence is disabled.
var ErrNoMirror = errors.New("store has no file mirror")

// FormatError reports a description that does not follow the
// `YYYY.MM.DD, HH:MM, "teacher", "title"` grammar.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid description %q: %s", e.Input, e.Reason)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// UnknownTypeError reports a type flag other than literature or math.
type UnknownTypeError struct {
	Type string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown entry type %q (expected literature|math)", e.Type)
}

func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}
