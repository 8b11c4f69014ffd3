// Package golferr defines the error kinds shared across the tracker.
// Validation errors signal caller misuse and carry the offending value plus
// the violated bounds; I/O and serialization errors wrap their cause so the
// caller can inspect it with errors.Is/As.
package golferr

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ScoreError reports a stroke count outside the accepted range for a hole.
// Hole and Par are context for the message only; the bound is fixed at 1..15.
type ScoreError struct {
	Score int
	Hole  int
	Par   int
}

func (e *ScoreError) Error() string {
	return fmt.Sprintf("invalid score %d for hole %d (par %d): must be between 1 and 15", e.Score, e.Hole, e.Par)
}

// HoleError reports a hole number outside 1..MaxHoles.
type HoleError struct {
	Hole     int
	MaxHoles int
}

func (e *HoleError) Error() string {
	return fmt.Sprintf("hole number %d is invalid: must be between 1 and %d", e.Hole, e.MaxHoles)
}

// ParError reports a par value outside the standard 3, 4 or 5.
type ParError struct {
	Par int
}

func (e *ParError) Error() string {
	return fmt.Sprintf("par %d is invalid: must be 3, 4 or 5", e.Par)
}

// UnknownHoleError reports a hole that is inside the card's range but has no
// par in its layout, so a score for it cannot be validated.
type UnknownHoleError struct {
	Hole int
}

func (e *UnknownHoleError) Error() string {
	return fmt.Sprintf("hole %d is unknown for this card: no par recorded", e.Hole)
}

// PlayerNotFoundError reports a player lookup miss in a context where the
// player was expected to exist.
type PlayerNotFoundError struct {
	ID uuid.UUID
}

func (e *PlayerNotFoundError) Error() string {
	return fmt.Sprintf("player %s not found", e.ID)
}

// RoundNotFoundError reports a scorecard lookup miss in a context where the
// round was expected to exist.
type RoundNotFoundError struct {
	ID uuid.UUID
}

func (e *RoundNotFoundError) Error() string {
	return fmt.Sprintf("round %s not found", e.ID)
}

// SerializationError reports a persisted record that could not be decoded.
type SerializationError struct {
	Path string
	Err  error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("malformed record %s: %v", e.Path, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// IOError reports a failed file-system or database operation.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// New builds a one-off error for conditions the typed kinds do not cover,
// such as an empty player name.
func New(msg string) error { return errors.New(msg) }

// Newf is New with formatting.
func Newf(format string, args ...any) error { return fmt.Errorf(format, args...) }

// IsValidation reports whether err means the caller submitted an invalid
// value. Validation errors are never retried; the input must be corrected.
func IsValidation(err error) bool {
	var (
		scoreErr   *ScoreError
		holeErr    *HoleError
		parErr     *ParError
		unknownErr *UnknownHoleError
	)
	return errors.As(err, &scoreErr) ||
		errors.As(err, &holeErr) ||
		errors.As(err, &parErr) ||
		errors.As(err, &unknownErr)
}

// IsNotFound reports whether err is a player or round lookup miss.
func IsNotFound(err error) bool {
	var (
		playerErr *PlayerNotFoundError
		roundErr  *RoundNotFoundError
	)
	return errors.As(err, &playerErr) || errors.As(err, &roundErr)
}
