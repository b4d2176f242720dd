package semver

import (
	"errors"
	"fmt"
)

// Kind identifies the class of failure behind an Error.
type Kind int

const (
	// KindInvalidVersion means a string expected to be a version did not
	// match the VERSION (or VERSION_LOOSE) pattern.
	KindInvalidVersion Kind = iota
	// KindInvalidComparator means a token inside a range failed to match
	// COMPARATOR (or COMPARATOR_LOOSE) in strict mode.
	KindInvalidComparator
	// KindInvalidRange means that, after normalization, no alternative in
	// a range produced any comparator.
	KindInvalidRange
	// KindParseInt means a numeric identifier overflowed the integer type
	// used to hold it.
	KindParseInt
)

func (k Kind) String() string {
	switch k {
	case KindInvalidVersion:
		return "invalid version"
	case KindInvalidComparator:
		return "invalid comparator"
	case KindInvalidRange:
		return "invalid range"
	case KindParseInt:
		return "integer overflow"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every parsing entry point in this
// package. Use Kind to discriminate, or errors.Is against one of the
// Err* sentinels below.
type Error struct {
	Kind  Kind
	Input string
	Err   error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("semver: %s %q: %s", e.Kind, e.Input, e.Err)
	}
	return fmt.Sprintf("semver: %s: %q", e.Kind, e.Input)
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, semver.ErrInvalidRange) (and friends) match any
// *Error sharing the same Kind, regardless of Input/Err.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newError(kind Kind, input string, cause error) *Error {
	return &Error{Kind: kind, Input: input, Err: cause}
}

// Is reports whether err is a *Error of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Sentinel errors for the common errors.Is(err, semver.ErrInvalidRange)
// style of check, in addition to the richer Kind-based Is above.
var (
	ErrInvalidVersion    = &Error{Kind: KindInvalidVersion}
	ErrInvalidComparator = &Error{Kind: KindInvalidComparator}
	ErrInvalidRange      = &Error{Kind: KindInvalidRange}
	ErrParseInt          = &Error{Kind: KindParseInt}
)
