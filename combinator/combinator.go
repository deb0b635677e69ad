// Package combinator defines the primitive token parsers the identifier
// grammars are assembled from: fixed-width digit runs with optional numeric
// range checks, fixed-width alphanumeric runs, signed years, and literal tags.
//
// A Parser consumes a prefix of its input starting at pos and returns the
// parsed value together with the position of the first unconsumed byte. The
// input string is never modified; a failed parser returns the position it was
// started at (parsers consume nothing on failure) plus an *eoid.Error
// positioned per the rules documented on eoid.Error.
package combinator

import (
	"errors"
	"strings"

	"github.com/earthobs/eoid"
)

// Error codes used by combinator:
const (
	// ShapeError indicates that a field did not have the required width or
	// alphabet at the expected position.
	ShapeError = eoid.CombinatorErrors + iota

	// RangeError indicates that a field had the correct shape but its numeric
	// value fell outside the declared bounds.
	RangeError

	// IncompleteError indicates that the input ended before a field could be
	// fully read.
	IncompleteError
)

// Parser is a parsing function over an input string. On success it returns
// the parsed value and the position of the first unconsumed byte; on failure
// it returns the zero value, the starting position, and a positioned error.
type Parser[T any] func(s string, pos int) (T, int, error)

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsAlphanumeric reports whether c is an ASCII letter or digit. It is the
// predicate behind Alphanumeric and is exported for use with TakeWhile.
func IsAlphanumeric(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// offsetOf extracts the failure offset from an error produced by a Parser.
func offsetOf(err error) int {
	var pe *eoid.Error
	if errors.As(err, &pe) {
		return pe.Offset
	}
	return 0
}

// Digits returns a parser consuming exactly width ASCII digits and yielding
// their unsigned decimal value. Leading zeros are allowed. A non-digit within
// the window is a shape violation at the start of the field; input ending
// inside the window is an incomplete-input failure.
func Digits(width int) Parser[int] {
	return func(s string, pos int) (int, int, error) {
		n := 0
		for i := 0; i < width; i++ {
			if pos+i >= len(s) {
				return 0, pos, eoid.IncompleteError(IncompleteError, len(s), width-i,
					"expected %d digits, input ended", width)
			}
			c := s[pos+i]
			if !isDigit(c) {
				return 0, pos, eoid.FormatError(ShapeError, pos, "expected %d digits", width)
			}
			n = n*10 + int(c-'0')
		}
		return n, pos + width, nil
	}
}

// DigitsInRange returns a parser consuming exactly width ASCII digits whose
// numeric value must lie in [lo, hi]. An out-of-range value is reported at
// the start of the field so that range and shape failures rank equally under
// the furthest-match heuristic.
func DigitsInRange(width, lo, hi int) Parser[int] {
	digits := Digits(width)
	return func(s string, pos int) (int, int, error) {
		n, next, err := digits(s, pos)
		if err != nil {
			return 0, pos, err
		}
		if n < lo || n > hi {
			return 0, pos, eoid.FormatError(RangeError, pos, "value %d out of range %d..%d", n, lo, hi)
		}
		return n, next, nil
	}
}

// Year parses a 4-digit year with an optional leading sign, defaulting to +.
func Year(s string, pos int) (int, int, error) {
	sign := 1
	p := pos
	if p < len(s) && (s[p] == '+' || s[p] == '-') {
		if s[p] == '-' {
			sign = -1
		}
		p++
	}
	y, next, err := Digits(4)(s, p)
	if err != nil {
		return 0, pos, err
	}
	return sign * y, next, nil
}

// Alphanumeric returns a parser consuming exactly width ASCII letters or
// digits. The matched text is returned as is; callers uppercase it when
// case-insensitive identity matters.
func Alphanumeric(width int) Parser[string] {
	return func(s string, pos int) (string, int, error) {
		for i := 0; i < width; i++ {
			if pos+i >= len(s) {
				return "", pos, eoid.IncompleteError(IncompleteError, len(s), width-i,
					"expected %d alphanumeric chars, input ended", width)
			}
			if !IsAlphanumeric(s[pos+i]) {
				return "", pos, eoid.FormatError(ShapeError, pos, "expected %d alphanumeric chars", width)
			}
		}
		return s[pos : pos+width], pos + width, nil
	}
}

// Take returns a parser consuming exactly n bytes of any content.
func Take(n int) Parser[string] {
	return func(s string, pos int) (string, int, error) {
		if pos+n > len(s) {
			return "", pos, eoid.IncompleteError(IncompleteError, len(s), pos+n-len(s),
				"expected %d chars, input ended", n)
		}
		return s[pos : pos+n], pos + n, nil
	}
}

// TakeWhile returns a parser consuming between min and max bytes satisfying
// pred. max < 0 means unbounded. Matching fewer than min bytes is a shape
// violation, or an incomplete-input failure when caused by the end of input.
func TakeWhile(min, max int, pred func(byte) bool) Parser[string] {
	return func(s string, pos int) (string, int, error) {
		i := pos
		for i < len(s) && (max < 0 || i-pos < max) && pred(s[i]) {
			i++
		}
		if i-pos < min {
			if i == len(s) {
				return "", pos, eoid.IncompleteError(IncompleteError, len(s), min-(i-pos),
					"expected at least %d matching chars, input ended", min)
			}
			return "", pos, eoid.FormatError(ShapeError, pos, "expected at least %d matching chars", min)
		}
		return s[pos:i], i, nil
	}
}

// Tag returns a parser consuming the given literal exactly.
func Tag(tag string) Parser[string] {
	return func(s string, pos int) (string, int, error) {
		end := pos + len(tag)
		if end > len(s) {
			if strings.HasPrefix(tag, s[pos:]) {
				return "", pos, eoid.IncompleteError(IncompleteError, len(s), end-len(s),
					"expected %q, input ended", tag)
			}
			return "", pos, eoid.FormatError(ShapeError, pos, "expected %q", tag)
		}
		if s[pos:end] != tag {
			return "", pos, eoid.FormatError(ShapeError, pos, "expected %q", tag)
		}
		return tag, end, nil
	}
}

// TagNoCase returns a parser consuming the given literal in any letter case.
// The returned value is the literal as given, not the matched text.
func TagNoCase(tag string) Parser[string] {
	return func(s string, pos int) (string, int, error) {
		end := pos + len(tag)
		if end > len(s) {
			if strings.EqualFold(tag[:len(s)-pos], s[pos:]) {
				return "", pos, eoid.IncompleteError(IncompleteError, len(s), end-len(s),
					"expected %q, input ended", tag)
			}
			return "", pos, eoid.FormatError(ShapeError, pos, "expected %q", tag)
		}
		if !strings.EqualFold(s[pos:end], tag) {
			return "", pos, eoid.FormatError(ShapeError, pos, "expected %q", tag)
		}
		return tag, end, nil
	}
}

// Alt returns a parser trying each alternative in order and returning the
// first success. When all alternatives fail it returns the failure that got
// furthest into the input; ties go to the earlier alternative.
func Alt[T any](alts ...Parser[T]) Parser[T] {
	return func(s string, pos int) (T, int, error) {
		var zero T
		var best error
		for _, p := range alts {
			v, next, err := p(s, pos)
			if err == nil {
				return v, next, nil
			}
			if best == nil || offsetOf(err) > offsetOf(best) {
				best = err
			}
		}
		if best == nil {
			best = eoid.FormatError(ShapeError, pos, "no alternatives given")
		}
		return zero, pos, best
	}
}

// Map returns a parser applying f to the value parsed by p.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(s string, pos int) (U, int, error) {
		v, next, err := p(s, pos)
		if err != nil {
			var zero U
			return zero, pos, err
		}
		return f(v), next, nil
	}
}

// Value returns a parser yielding the fixed value v whenever p succeeds.
// It is the usual way to map a literal tag onto an enumeration constant.
func Value[T, U any](p Parser[T], v U) Parser[U] {
	return func(s string, pos int) (U, int, error) {
		_, next, err := p(s, pos)
		if err != nil {
			var zero U
			return zero, pos, err
		}
		return v, next, nil
	}
}
