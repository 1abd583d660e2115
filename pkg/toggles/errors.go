package toggles

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned for an index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("toggle index out of range")
	// ErrUnknownToggle is returned for a name that is not part of the kind.
	ErrUnknownToggle = errors.New("unknown toggle")
	// ErrFileRead is returned when a state file cannot be read at all.
	ErrFileRead = errors.New("read toggle file")
	// ErrDecode is returned when a TOML or YAML state file is not well-formed.
	ErrDecode = errors.New("decode toggle file")
	// ErrMalformedLine marks a skipped line of a text state file. It is reported, never returned.
	ErrMalformedLine = errors.New("malformed line")
)

// IndexError describes an out of range index.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: %d (len %d)", ErrIndexOutOfRange, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// NameError describes a name that does not resolve to a toggle.
type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%v %q", ErrUnknownToggle, e.Name)
}

func (e *NameError) Unwrap() error { return ErrUnknownToggle }

// FileError describes a state file that could not be read or decoded.
// Kind is ErrFileRead or ErrDecode.
type FileError struct {
	Path string
	Kind error
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%v %s: %v", e.Kind, e.Path, e.Err)
}

func (e *FileError) Unwrap() []error { return []error{e.Kind, e.Err} }
