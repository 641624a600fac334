// Package result provides a two-variant success/error container for fallible
// operations in environments where exceptions and heap allocation are off the
// table.
//
// Result[T, E] is a tagged container with exactly two variants:
//   - Ok, representing success and carrying a value of T
//   - Err, representing failure and carrying an error value of E
//
// The variant can be checked with IsOk and IsErr. Several methods extract the
// contained value; when called against the wrong variant, Unwrap, Expect,
// UnwrapErr, Take and TakeErr report through the fail package and never
// return. UnwrapOrElse is the sanctioned recovery path and never fails.
//
// Example:
//
//	func divide(a, b int) result.Result[int, string] {
//		if b == 0 {
//			return result.Err[int, string]("division by zero")
//		}
//		return result.Ok[int, string](a / b)
//	}
//
// Result combinators uphold Functor/Monad laws (see laws_result_test.go) so
// chained transformations stay predictable.
package result

import "github.com/charmingruby/ccl/fail"

// Unit is a zero-information placeholder for operations that can fail but
// otherwise return nothing.
//
// Example:
//
//	func flush() result.Result[result.Unit, FlushError]
type Unit struct{}

// Result represents the outcome of an operation that can succeed with a value
// of T or fail with an error value of E. Exactly one payload is live at a
// time and the other stays at its zero value. Results are plain values:
// copying or assigning one duplicates the live payload and the variant tag
// together, with no heap allocation.
//
// The zero Result is an Err carrying the zero E; always build Results through
// Ok or Err.
//
// Example:
//
//	res := result.Ok[int, string](200)
//	fmt.Println(res.IsOk()) // true
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok constructs a success Result carrying value.
//
// Example:
//
//	res := result.Ok[int, string](1)
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err constructs a failure Result carrying err.
//
// Example:
//
//	res := result.Err[int, string]("sensor offline")
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// FromTuple converts a standard Go (value, error) pair into a Result.
//
// Example:
//
//	res := result.FromTuple(os.ReadFile(path))
func FromTuple[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](value)
}

// IsOk reports whether the Result holds the success variant.
//
// Example:
//
//	if res.IsOk() {
//		fmt.Println("success")
//	}
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the Result holds the failure variant.
//
// Example:
//
//	if res.IsErr() {
//		retry()
//	}
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Get returns a copy of the success value along with a boolean indicating
// whether the Result is Ok, mirroring Go's comma-ok convention.
//
// Example:
//
//	if v, ok := res.Get(); ok {
//		use(v)
//	}
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.ok
}

// GetErr returns a copy of the error value along with a boolean indicating
// whether the Result is Err.
func (r Result[T, E]) GetErr() (E, bool) {
	return r.err, !r.ok
}

// Unwrap returns a copy of the success value. On an Err Result it reports a
// generic diagnostic through the fail package, attributed to the caller, and
// does not return.
//
// Example:
//
//	value := divide(6, 3).Unwrap()
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		throw(msgUnwrap)
	}
	return r.value
}

// Expect behaves like Unwrap but delivers the caller-supplied message to the
// fail package on an Err Result.
//
// Example:
//
//	cfg := loadConfig().Expect("config must parse")
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		throw(msg)
	}
	return r.value
}

// UnwrapErr returns a copy of the error value. On an Ok Result it reports a
// generic diagnostic through the fail package and does not return.
//
// Example:
//
//	kind := divide(1, 0).UnwrapErr()
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		throw(msgUnwrapErr)
	}
	return r.err
}

// UnwrapOr returns the success value when present, otherwise fallback.
//
// Example:
//
//	port := parsePort(raw).UnwrapOr(8080)
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

// UnwrapOrElse returns the success value when present, otherwise the value
// produced by fn from the error payload. This is the designed recovery path:
// it never reaches the fail package.
//
// Example:
//
//	file := open(path).UnwrapOrElse(func(kind ErrorKind) File {
//		return create(path).Expect("cannot create file")
//	})
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.err)
}

// Ref returns a pointer to the success value held inside r, allowing in-place
// reads and mutation of a named Result. On an Err Result it reports through
// the fail package and does not return. The pointer stays valid until r is
// reassigned or moved from.
//
// Example:
//
//	*res.Ref() += 1
func (r *Result[T, E]) Ref() *T {
	if !r.ok {
		throw(msgRef)
	}
	return &r.value
}

// ErrRef returns a pointer to the error value held inside r. On an Ok Result
// it reports through the fail package and does not return.
func (r *Result[T, E]) ErrRef() *E {
	if r.ok {
		throw(msgErrRef)
	}
	return &r.err
}

// Take transfers the success value out of r, leaving the stored payload at
// its zero value. After Take the Result is moved-from: it must not be used
// again other than being dropped or assigned over. On an Err Result it
// reports through the fail package and does not return.
//
// Example:
//
//	buf := fill().Take() // res no longer owns the buffer
func (r *Result[T, E]) Take() T {
	if !r.ok {
		throw(msgTake)
	}
	value := r.value
	var zero T
	r.value = zero
	return value
}

// TakeErr transfers the error value out of r, leaving the stored payload at
// its zero value and the Result moved-from. On an Ok Result it reports
// through the fail package and does not return.
func (r *Result[T, E]) TakeErr() E {
	if r.ok {
		throw(msgTakeErr)
	}
	err := r.err
	var zero E
	r.err = zero
	return err
}

// Generic diagnostics for wrong-variant access. Expect is the customisable
// sibling, so it has no entry here.
const (
	msgUnwrap    = "result: Unwrap on Err variant"
	msgUnwrapErr = "result: UnwrapErr on Ok variant"
	msgRef       = "result: Ref on Err variant"
	msgErrRef    = "result: ErrRef on Ok variant"
	msgTake      = "result: Take on Err variant"
	msgTakeErr   = "result: TakeErr on Ok variant"
)

// throw reports a wrong-variant access attributed to the frame that called
// the extraction method. Keeping it out of line keeps the extraction hot
// paths small and the failing branch cold.
func throw(msg string) {
	fail.PanicAt(msg, fail.Caller(2))
}
