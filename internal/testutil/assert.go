// Package testutil provides shared test utilities for the minimax-chess-go project.
package testutil

import (
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t *testing.T, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		report(t, fmt.Sprintf("mismatch (-want +got):\n%s", diff), msgAndArgs...)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		report(t, fmt.Sprintf("unexpected error: %v", err), msgAndArgs...)
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		report(t, fmt.Sprintf("error = %v, want %v", err, target), msgAndArgs...)
	}
}

// AssertPanics fails if fn returns without panicking.
func AssertPanics(t *testing.T, fn func(), msgAndArgs ...interface{}) {
	t.Helper()
	defer func() {
		if recover() == nil {
			report(t, "expected panic", msgAndArgs...)
		}
	}()
	fn()
}

// AssertSamePosition fails if any field of got differs from want:
// grid, side to move, last action, record or selection.
func AssertSamePosition(t *testing.T, got, want *chess.Position, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		report(t, fmt.Sprintf("position changed (-want +got):\n%s", diff), msgAndArgs...)
	}
}

// AssertMoves compares a set of actions against coordinate strings,
// ignoring order.
func AssertMoves(t *testing.T, got []chess.Action, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	gotStrings := MoveStrings(got)
	wantSorted := append([]string(nil), want...)
	sort.Strings(wantSorted)
	if diff := cmp.Diff(wantSorted, gotStrings); diff != "" {
		report(t, fmt.Sprintf("moves mismatch (-want +got):\n%s", diff), msgAndArgs...)
	}
}

// MoveStrings renders actions in coordinate notation, sorted.
func MoveStrings(actions []chess.Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.String()
	}
	sort.Strings(out)
	return out
}

func report(t *testing.T, failure string, msgAndArgs ...interface{}) {
	t.Helper()
	if msg := formatMessage(msgAndArgs...); msg != "" {
		t.Errorf("%s: %s", msg, failure)
		return
	}
	t.Error(failure)
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
