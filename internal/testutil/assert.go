// Package testutil provides shared test helpers for the chessrules packages.
package testutil

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules/internal/errors"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		failf(t, msgAndArgs, "mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		failf(t, msgAndArgs, "unexpected error: %v", err)
	}
}

// AssertErrorIs fails unless err matches target with errors.Is.
func AssertErrorIs(t testing.TB, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !stderrors.Is(err, target) {
		failf(t, msgAndArgs, "error %v does not match %v", err, target)
	}
}

// AssertMoveError fails unless err is a *errors.MoveError of kind.
// It returns the MoveError so callers can inspect Reason or Err.
func AssertMoveError(t testing.TB, err error, kind errors.MoveKind, msgAndArgs ...interface{}) *errors.MoveError {
	t.Helper()
	var moveErr *errors.MoveError
	if !stderrors.As(err, &moveErr) {
		failf(t, msgAndArgs, "error %v is not a move error; want %q", err, kind)
		return nil
	}
	if moveErr.Kind != kind {
		failf(t, msgAndArgs, "move error kind = %q; want %q", moveErr.Kind, kind)
	}
	return moveErr
}

// AssertNotationError fails unless err wraps a *errors.NotationError of kind.
func AssertNotationError(t testing.TB, err error, kind errors.NotationKind, msgAndArgs ...interface{}) {
	t.Helper()
	var notationErr *errors.NotationError
	if !stderrors.As(err, &notationErr) {
		failf(t, msgAndArgs, "error %v does not wrap a notation error", err)
		return
	}
	if notationErr.Kind != kind {
		failf(t, msgAndArgs, "notation error = %q; want kind %d", notationErr, kind)
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t testing.TB, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		failf(t, msgAndArgs, "%q does not contain %q", got, substr)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		failf(t, msgAndArgs, "expected true but got false")
	}
}

// failf reports a failure, prefixed with the optional message.
func failf(t testing.TB, msgAndArgs []interface{}, format string, args ...interface{}) {
	t.Helper()
	text := fmt.Sprintf(format, args...)
	if msg := formatMessage(msgAndArgs...); msg != "" {
		text = msg + ": " + text
	}
	t.Error(text)
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
