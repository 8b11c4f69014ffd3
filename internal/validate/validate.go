// Package validate holds the pure range checks the scorecard is built on.
// The functions keep no state and are safe to call concurrently.
package validate

import "github.com/antigravity/golftracker/internal/golferr"

// HoleNumber checks that hole lies in 1..maxHoles.
func HoleNumber(hole, maxHoles int) error {
	if hole < 1 || hole > maxHoles {
		return &golferr.HoleError{Hole: hole, MaxHoles: maxHoles}
	}
	return nil
}

// Par checks that par is one of the standard values 3, 4 or 5.
func Par(par int) error {
	if par < 3 || par > 5 {
		return &golferr.ParError{Par: par}
	}
	return nil
}

// Score checks that strokes lies in 1..15. The hole and par are carried into
// the error for the message; the bound itself does not depend on par.
func Score(strokes, hole, par int) error {
	if strokes < 1 || strokes > 15 {
		return &golferr.ScoreError{Score: strokes, Hole: hole, Par: par}
	}
	return nil
}
