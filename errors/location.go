package errors

import (
	"fmt"
	"path"
	"runtime"
)

// LocationDisplayMode selects how error locations are formated. See
// LocationXXX constants for valid values.
type LocationDisplayMode int

// Location display modes
const (
	LocationFull    LocationDisplayMode = iota // Full path name
	LocationPackage                            // Pkg/file-name
	LocationBase                               // Base file-name
)

// LocationDisplay is a global configuration variable that controls
// the way error locations are displayed.
var LocationDisplay LocationDisplayMode = LocationPackage

// Location is a file-name, line-number pair.
type Location struct {
	File string
	Line int
}

// IsSet tests if the location is set.
func (l Location) IsSet() bool {
	return l.File != ""
}

// String returns the location formated according to LocationDisplay,
// or "" if the location is not set.
func (l Location) String() string {
	if !l.IsSet() {
		return ""
	}
	f := l.File
	switch LocationDisplay {
	case LocationPackage:
		f = path.Base(path.Dir(f)) + "/" + path.Base(f)
	case LocationBase:
		f = path.Base(f)
	}
	return fmt.Sprintf("%s:%d", f, l.Line)
}

// Set sets the location to the position where the method was called
// from, skipping "skip" additional stack-frames: with skip == 0 the
// location is the line of the Set invocation, with skip == 1 it is
// the line that called the function containing Set, and so on.
func (l *Location) Set(skip int) {
	_, l.File, l.Line, _ = runtime.Caller(skip + 1)
}

// Loc returns the location of the error "e". If the error type has no
// location, or the location is not set, a zero-valued Location is
// returned.
func Loc(e error) Location {
	type errWithLocation interface {
		Location() Location
	}
	if el, ok := e.(errWithLocation); ok {
		return el.Location()
	}
	return Location{}
}
