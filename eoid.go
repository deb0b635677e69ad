/*
Package eoid decodes the fixed-format identifiers used by earth observation
data products (satellite scene and product names) into typed records.

Consists of subpackages:
  - cmd/eoid: console utility resolving identifiers given on the command line;
  - combinator: fixed-width token parsers the grammars are assembled from;
  - temporal: calendar date, time of day, timestamp, and Julian date parsers;
  - mission/landsat, mission/sentinel2, mission/sentinel3: per-mission grammars;
  - identify: grammar registry and the multi-grammar dispatcher.

Typical usage is:

	ident, err := identify.Resolve("LC80390222013076EDC00")
	if err != nil {
		// err is an *eoid.Error carrying the byte offset of the failure
	}
	scene := ident.(landsat.SceneID)

Every parser is a pure function of its input: no parser mutates the input
string or keeps state between calls, so all of them (and any registry) are
safe for concurrent use.
*/
package eoid

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	CombinatorErrors = 1   // used by combinator
	TemporalErrors   = 101 // used by temporal
	IdentifyErrors   = 201 // used by identify
)

// Error is the error type used by eoid subpackages.
//
// Offsets are byte offsets from the start of the input passed to the
// outermost parser. A failure caused by truncated input reports the offset
// at which the input ended and records in Needed how many more bytes the
// failed field still required; all other failures report the offset of the
// field that rejected the content. Range violations are reported at the
// start of the field, not its end, so that they rank equally with shape
// violations when the dispatcher compares failures by offset.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message, not including position information.
	Message string

	// Offset contains the byte offset at which parsing failed.
	Offset int

	// Needed contains the number of additional input bytes required to finish
	// the failed field, or 0 when the failure was not caused by truncation.
	Needed int

	// Err contains the wrapped underlying error, if any.
	Err error
}

// NewError creates new Error structure.
func NewError(code int, msg string, offset int) *Error {
	return &Error{Code: code, Message: msg, Offset: offset}
}

// Error renders the message with position information attached.
func (e *Error) Error() string {
	if e.Needed > 0 {
		return fmt.Sprintf("%s at position %d (need %d more)", e.Message, e.Offset, e.Needed)
	}
	return fmt.Sprintf("%s at position %d", e.Message, e.Offset)
}

// Incomplete reports whether the error was caused by truncated input rather
// than by rejected content.
func (e *Error) Incomplete() bool {
	return e.Needed > 0
}

func (e *Error) Unwrap() error {
	return e.Err
}

// FormatError creates Error structure.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code, offset int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, offset)
}

// IncompleteError creates Error structure for a field that ran past the end
// of input. offset is the position at which input ended, needed is the
// number of additional bytes the field required.
func IncompleteError(code, offset, needed int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	e := NewError(code, msg, offset)
	e.Needed = needed
	return e
}
