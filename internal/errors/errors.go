// Package errors provides sentinel errors and error types for the chess engine.
// It defines the move-legality and notation failure conditions and a
// structured error type that preserves context while allowing error
// inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for move legality and notation failures.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrStartSquareEmpty indicates an action whose start square holds no piece.
	ErrStartSquareEmpty = errors.New("start square is empty")

	// ErrInvalidPieceColor indicates the piece on the start square belongs
	// to the side that is not on move.
	ErrInvalidPieceColor = errors.New("piece belongs to the wrong side")

	// ErrInvalidAction indicates an action that fails geometry, path or
	// occupancy rules.
	ErrInvalidAction = errors.New("invalid action")

	// ErrRemainsInCheck indicates an action that would leave the mover's
	// own king attacked.
	ErrRemainsInCheck = errors.New("king remains in check")

	// ErrInvalidLocationStringLength indicates square notation that is not
	// exactly two characters long.
	ErrInvalidLocationStringLength = errors.New("invalid location string length")

	// ErrInvalidLocationString indicates square notation with unrecognised
	// file or rank characters.
	ErrInvalidLocationString = errors.New("invalid location string")

	// ErrInvalidMoveString indicates move notation that is not two squares.
	ErrInvalidMoveString = errors.New("invalid move string")

	// ErrInvalidLayout indicates a malformed board layout encoding.
	ErrInvalidLayout = errors.New("invalid board layout")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameOver indicates a move was requested after the game ended.
	ErrGameOver = errors.New("game is over")
)

// MoveError wraps a move failure with the ply it was attempted at and the
// move text. It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	Ply  int    // 1-based ply the move would have been (0 if unknown)
	Move string // The move in coordinate notation (if known)
	Side string // Side that attempted the move (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Side != "" {
		parts = append(parts, e.Side)
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "move error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's tree matches target.
// It forwards to the standard library so callers need a single import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
