package types

import (
	"errors"
	"fmt"
)

// Storage errors. Callers compare with errors.Is.
var (
	// ErrNoSuchFile is returned by Load when the storage document does not
	// exist. Callers recover by starting from an empty dictionary.
	ErrNoSuchFile = errors.New("no such storage file")

	ErrNoSuchItem     = errors.New("no such item")
	ErrAmbiguousItem  = errors.New("ambiguous item: more than one meaning is stored, an id is required")
	ErrDuplicateEntry = errors.New("meaning is already stored for this abbreviation")
	ErrParsing        = errors.New("storage file is malformed")
)

// Input validation errors.
var (
	ErrEmptyAbbreviation = errors.New("abbreviation must not be empty")
	ErrEmptyName         = errors.New("meaning must not be empty")
	ErrInvalidID         = errors.New("id must be a positive number")
)

// ParseError reports a storage document that could not be decoded or that
// violates the dictionary invariants. It matches ErrParsing under errors.Is.
type ParseError struct {
	Path string
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	var s string
	if e.Path != "" {
		s = fmt.Sprintf("%s: %s", e.Path, ErrParsing)
	} else {
		s = ErrParsing.Error()
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParsing}
	}
	return []error{ErrParsing, e.Err}
}
