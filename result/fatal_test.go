package result_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charmingruby/ccl/fail"
	"github.com/charmingruby/ccl/result"
)

// captureFailure runs fn with an intercepting failure handler installed and
// reports what reached it. It fails the test unless fn hit the failure path
// exactly once and did not return normally.
func captureFailure(t *testing.T, fn func()) (string, fail.Location) {
	t.Helper()

	var (
		msg   string
		loc   fail.Location
		calls int
	)
	prev := fail.SetHandler(func(m string, l fail.Location) {
		msg = m
		loc = l
		calls++
	})
	defer fail.SetHandler(prev)

	panicked := false
	func() {
		defer func() {
			if recover() != nil {
				panicked = true
			}
		}()
		fn()
	}()

	require.True(t, panicked, "extraction returned instead of failing")
	require.Equal(t, 1, calls, "failure handler invocations")
	return msg, loc
}

func TestUnwrapOnErrFails(t *testing.T) {
	msg, loc := captureFailure(t, func() {
		result.Err[int, int](-1).Unwrap()
	})
	require.Equal(t, "result: Unwrap on Err variant", msg)
	require.True(t, strings.HasSuffix(loc.File, "fatal_test.go"), "location file: %s", loc.File)
	require.Contains(t, loc.Function, "result_test")
}

func TestExpectDeliversCustomMessage(t *testing.T) {
	msg, _ := captureFailure(t, func() {
		result.Err[int, string]("offline").Expect("custom")
	})
	require.Equal(t, "custom", msg)
}

func TestUnwrapErrOnOkFails(t *testing.T) {
	msg, _ := captureFailure(t, func() {
		result.Ok[int, int](1).UnwrapErr()
	})
	require.Equal(t, "result: UnwrapErr on Ok variant", msg)
}

func TestTakeOnWrongVariantFails(t *testing.T) {
	msg, _ := captureFailure(t, func() {
		res := result.Err[int, string]("late")
		res.Take()
	})
	require.Equal(t, "result: Take on Err variant", msg)

	msg, _ = captureFailure(t, func() {
		res := result.Ok[int, string](1)
		res.TakeErr()
	})
	require.Equal(t, "result: TakeErr on Ok variant", msg)
}

func TestRefOnWrongVariantFails(t *testing.T) {
	msg, _ := captureFailure(t, func() {
		res := result.Err[int, string]("late")
		res.Ref()
	})
	require.Equal(t, "result: Ref on Err variant", msg)

	msg, _ = captureFailure(t, func() {
		res := result.Ok[int, string](1)
		res.ErrRef()
	})
	require.Equal(t, "result: ErrRef on Ok variant", msg)
}

func TestUnwrapOrElseNeverFails(t *testing.T) {
	calls := 0
	prev := fail.SetHandler(func(string, fail.Location) { calls++ })
	defer fail.SetHandler(prev)

	got := result.Err[int, string]("down").UnwrapOrElse(func(string) int { return 3 })
	require.Equal(t, 3, got)
	require.Zero(t, calls, "recovery path reached the failure handler")
}
