package result

// Map transforms the success value, leaving failures untouched.
//
// Example:
//
//	length := result.Map(read(), func(s string) int { return len(s) })
func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](fn(r.value))
	}
	return Err[U, E](r.err)
}

// MapErr transforms the error value, leaving successes untouched.
//
// Example:
//
//	res := result.MapErr(read(), func(kind ErrorKind) string {
//		return kind.String()
//	})
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T, F](fn(r.err))
}

// FlatMap chains computations, propagating the first failure.
//
// Example:
//
//	res := result.FlatMap(openFile(path), readHeader)
func FlatMap[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return fn(r.value)
	}
	return Err[U, E](r.err)
}

// FlatMapErr chains error handlers, allowing recovery paths that still return
// Results. A nil fn leaves r untouched.
//
// Example:
//
//	recovered := result.FlatMapErr(load(), func(kind ErrorKind) result.Result[Config, ErrorKind] {
//		return loadFromFallback()
//	})
func FlatMapErr[T, E any](r Result[T, E], fn func(E) Result[T, E]) Result[T, E] {
	if r.ok || fn == nil {
		return r
	}
	return fn(r.err)
}

// Fold collapses the Result into a single value.
//
// Example:
//
//	line := result.Fold(res,
//		func(kind ErrorKind) string { return "failed: " + kind.String() },
//		func(v int) string { return fmt.Sprintf("ok: %d", v) },
//	)
func Fold[T, E, U any](r Result[T, E], onErr func(E) U, onOk func(T) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// Tap executes fn on the success value and returns the original Result.
//
// Example:
//
//	_ = result.Tap(save(), func(id uint32) { blink(id) })
func Tap[T, E any](r Result[T, E], fn func(T)) Result[T, E] {
	if r.ok {
		fn(r.value)
	}
	return r
}

// TapErr executes fn on the error value and returns the original Result.
func TapErr[T, E any](r Result[T, E], fn func(E)) Result[T, E] {
	if !r.ok {
		fn(r.err)
	}
	return r
}

// Collect gathers the success values from the provided Results, ignoring
// failures. The returned slice never shares a backing array with inputs.
//
// Example:
//
//	values := result.Collect(samples)
func Collect[T, E any](results []Result[T, E]) []T {
	if len(results) == 0 {
		return []T{}
	}
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.ok {
			values = append(values, r.value)
		}
	}
	return values
}

// PartitionResults splits the input slice into success values and collected
// error values.
//
// Example:
//
//	vals, errs := result.PartitionResults(samples)
func PartitionResults[T, E any](results []Result[T, E]) ([]T, []E) {
	if len(results) == 0 {
		return []T{}, []E{}
	}
	values := make([]T, 0, len(results))
	errs := make([]E, 0, len(results))
	for _, r := range results {
		if r.ok {
			values = append(values, r.value)
			continue
		}
		errs = append(errs, r.err)
	}
	return values, errs
}

// Sequence converts a slice of Results into a Result containing a slice of
// values, failing fast on the first error.
//
// Example:
//
//	res := result.Sequence([]result.Result[int, string]{loadA(), loadB()})
func Sequence[T, E any](results []Result[T, E]) Result[[]T, E] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if !r.ok {
			return Err[[]T, E](r.err)
		}
		values = append(values, r.value)
	}
	return Ok[[]T, E](values)
}

// Traverse maps input values to Results and sequences them.
//
// Example:
//
//	res := result.Traverse(pins, readPin)
func Traverse[A, B, E any](items []A, fn func(A) Result[B, E]) Result[[]B, E] {
	values := make([]B, 0, len(items))
	for _, item := range items {
		res := fn(item)
		if !res.ok {
			return Err[[]B, E](res.err)
		}
		values = append(values, res.value)
	}
	return Ok[[]B, E](values)
}

// Zip2 combines two Results into one containing a pair of values, failing
// with the first error encountered.
//
// Example:
//
//	combined := result.Zip2(readTemp(), readPressure())
func Zip2[A, B, E any](ra Result[A, E], rb Result[B, E]) Result[Tuple2[A, B], E] {
	if !ra.ok {
		return Err[Tuple2[A, B], E](ra.err)
	}
	if !rb.ok {
		return Err[Tuple2[A, B], E](rb.err)
	}
	return Ok[Tuple2[A, B], E](Tuple2[A, B]{First: ra.value, Second: rb.value})
}

// Zip3 combines three Results into one containing a triple of values.
func Zip3[A, B, C, E any](ra Result[A, E], rb Result[B, E], rc Result[C, E]) Result[Tuple3[A, B, C], E] {
	if !ra.ok {
		return Err[Tuple3[A, B, C], E](ra.err)
	}
	if !rb.ok {
		return Err[Tuple3[A, B, C], E](rb.err)
	}
	if !rc.ok {
		return Err[Tuple3[A, B, C], E](rc.err)
	}
	return Ok[Tuple3[A, B, C], E](Tuple3[A, B, C]{First: ra.value, Second: rb.value, Third: rc.value})
}

// Tuple2 represents a pair of values.
type Tuple2[A, B any] struct {
	First  A
	Second B
}

// Tuple3 represents three values.
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}
