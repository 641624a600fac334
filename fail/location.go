package fail

import (
	"fmt"
	"runtime"
)

// Location identifies a source position: originating file, line, and the
// enclosing function. The zero Location formats as "unknown".
type Location struct {
	File     string
	Line     int
	Function string
}

// Caller captures the source location skip frames above the caller of Caller
// itself; skip 0 is that caller. When the runtime cannot resolve the frame
// (stripped binaries, exotic targets) the zero Location is returned.
//
// Example:
//
//	loc := fail.Caller(0) // the line of this call
func Caller(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	loc := Location{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		loc.Function = fn.Name()
	}
	return loc
}

// String renders the location as "file:line (function)".
func (l Location) String() string {
	if l.File == "" {
		return "unknown"
	}
	if l.Function == "" {
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}
	return fmt.Sprintf("%s:%d (%s)", l.File, l.Line, l.Function)
}
