// Package errors implements the error values returned by the treedp
// packages. It can be used as a drop-in replacement to the stdlib's
// "errors" package for creating errors, and provides additional
// functionality, namelly: An error type that records location
// information (file-name, line-number). The ability to flag errors
// with characteristics such as "ErrInvalidArgument" or
// "ErrInvalidRange"; errors thusly flagged can be checked using
// general predicate functions. The ability to "wrap" errors adding
// information to them.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ShowLocations is a global configuration variable that controls
// whether error locations (file-name, line-number) are displayed. If
// "true", they are, if "false", they are not.
var ShowLocations bool = true

// Error flags used to signify error characteristics and help / guide
// the code handling the error. Custom error types embedding ErrT can
// define additional flags if required, starting from 1 <<
// ErrBitCustom.
const (
	// ErrInvalidArgument flags a rejected input, e.g. a key range
	// smaller than 2 or a negative frequency.
	ErrInvalidArgument uint = 1 << iota
	// ErrInvalidRange flags an interval query with end < start or
	// with bounds outside the frequency array. It indicates a bug in
	// the caller's recurrence bounds.
	ErrInvalidRange
	// ErrOverflow flags a result that does not fit the integer type
	// used to report it.
	ErrOverflow

	ErrBitCustom = iota
)

// ErrT is a simple error type that you can use directly or embed in
// your own error types. It has a string message and a location
// (file-name, line-number) that can be optionally set (see functions
// Err, Errf). It can be flagged with characteristics like
// ErrInvalidArgument. The presence of flags can be checked using the
// Has method or the predicate functions like IsInvalidArgument.
type ErrT struct {
	Flags uint
	Loc   Location
	Msg   string
}

// Error formats ErrT as a string. Formating depends on the value of
// the global configuration flag ShowLocations.
func (e *ErrT) Error() string {
	if !ShowLocations || !e.Loc.IsSet() {
		return e.Msg
	}
	return e.Loc.String() + ": " + e.Msg
}

// Location returns ErrT's location. If no location is set for the
// error, then a zero-valued Location struct is returned.
func (e *ErrT) Location() Location {
	return e.Loc
}

// Has checks if all the bits in flags are set on the error.
func (e *ErrT) Has(flags uint) bool {
	return e.Flags&flags == flags
}

// New creates and returns a new error. The error is not flagged with
// any characteristics, and its location is not set.
func New(msg string) error {
	return &ErrT{Msg: msg}
}

// Err creates and returns a new error. The error is flagged with
// "flags" (use the appropriate ErrXXX constants ORed together, or 0
// for no flags). The location of the error is set to the file-name and
// line-number of the Err invocation.
func Err(flags uint, msg string) error {
	e := &ErrT{Flags: flags, Msg: msg}
	e.Loc.Set(1)
	return e
}

// Errf creates and returns a new error using a Printf-like
// interface. See also function Err.
func Errf(flags uint, format string, a ...interface{}) error {
	e := &ErrT{Flags: flags, Msg: fmt.Sprintf(format, a...)}
	e.Loc.Set(1)
	return e
}

// ErrNL is similar with Err, with the difference that ErrNL does not
// set the error location. It is used to create global (sentinel)
// error values that are returned from multiple source locations.
func ErrNL(flags uint, msg string) error {
	return &ErrT{Flags: flags, Msg: msg}
}

// flagged walks the chain of wrappers below e and reports whether any
// error in it carries all the bits in flags.
func flagged(e error, flags uint) bool {
	type flagger interface {
		Has(uint) bool
	}
	for e != nil {
		if f, ok := e.(flagger); ok && f.Has(flags) {
			return true
		}
		if w := Wrapped(e); w != nil {
			e = w
		} else {
			e = stderrors.Unwrap(e)
		}
	}
	return false
}

// IsInvalidArgument is a predicate that tests if the error, or any
// error it wraps, is flagged with ErrInvalidArgument.
func IsInvalidArgument(e error) bool {
	return flagged(e, ErrInvalidArgument)
}

// IsInvalidRange is a predicate that tests if the error, or any error
// it wraps, is flagged with ErrInvalidRange.
func IsInvalidRange(e error) bool {
	return flagged(e, ErrInvalidRange)
}

// IsOverflow is a predicate that tests if the error, or any error it
// wraps, is flagged with ErrOverflow.
func IsOverflow(e error) bool {
	return flagged(e, ErrOverflow)
}

// Is reports whether any error in e's chain matches target. It is
// stdlib's errors.Is, re-exported so that callers need not import
// both packages.
func Is(e, target error) bool {
	return stderrors.Is(e, target)
}
