// Package fail implements the unrecoverable failure path shared by ccl
// packages. A call to Panic reports a diagnostic message together with the
// originating source location and halts execution; it never returns to the
// caller.
//
// Example:
//
//	if voltage > limit {
//		fail.Panic("regulator out of range")
//	}
//
// The reporting channel and the terminal behaviour are swappable through
// SetOutput and SetHandler so host programs can route diagnostics to a serial
// console, a memory-mapped log, or a test probe. The package keeps no locks:
// like the rest of ccl it assumes single-threaded, non-reentrant use, and
// handler or output swaps must not race with failure reports.
package fail

import (
	"fmt"
	"io"
	"os"
)

// Handler receives every reported failure. A Handler is expected to halt; if
// it returns anyway, the failure is re-thrown as a *Error so that no Panic
// call site ever resumes.
type Handler func(msg string, loc Location)

// Error describes a reported failure. It is the value thrown when a custom
// Handler returns instead of halting.
type Error struct {
	Msg string
	Loc Location
}

func (e *Error) Error() string {
	return fmt.Sprintf("panic: %s\n  at %s", e.Msg, e.Loc)
}

var (
	output  io.Writer = os.Stderr
	handler Handler   = defaultHandler
	exit              = os.Exit
)

// defaultHandler writes the diagnostic to the configured output and
// terminates the process. On hosted targets the sink is stderr; embedded
// hosts replace it via SetOutput before the first possible failure.
func defaultHandler(msg string, loc Location) {
	fmt.Fprintf(output, "panic: %s\n  at %s\n", msg, loc)
	exit(2)
}

// SetHandler installs h as the failure handler and returns the previous one.
// Passing nil restores the default handler.
//
// Example:
//
//	prev := fail.SetHandler(func(msg string, loc fail.Location) {
//		probe.Record(msg, loc)
//	})
//	defer fail.SetHandler(prev)
func SetHandler(h Handler) Handler {
	prev := handler
	if h == nil {
		h = defaultHandler
	}
	handler = h
	return prev
}

// SetOutput redirects the default handler's diagnostic sink and returns the
// previous writer. Embedded hosts must install a writer that is safe to use
// from every context a failure can be reached from, interrupts included.
func SetOutput(w io.Writer) io.Writer {
	prev := output
	output = w
	return prev
}

// Panic reports msg with the immediate caller's source location and halts.
// It never returns.
//
// Example:
//
//	fail.Panic("unreachable state")
func Panic(msg string) {
	PanicAt(msg, Caller(1))
}

// PanicAt reports msg at an explicitly supplied location and halts. It exists
// for callers that forward a failure on behalf of their own caller, or for
// targets without usable call-site introspection. It never returns.
func PanicAt(msg string, loc Location) {
	handler(msg, loc)
	// Custom handlers may return; the contract does not. Throw so every call
	// site stays terminal for control-flow analysis.
	panic(&Error{Msg: msg, Loc: loc})
}
