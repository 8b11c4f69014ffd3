package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Round is the metadata for one play-through of a course. The per-hole
// record lives on the Scorecard keyed by the same round id.
type Round struct {
	ID       uuid.UUID `json:"id"`
	Date     time.Time `json:"date"`
	Course   string    `json:"course"`
	MaxHoles int       `json:"max_holes"`
}

// NewRound creates a round stamped with the current UTC time.
func NewRound(course string, maxHoles int) *Round {
	return &Round{
		ID:       uuid.New(),
		Date:     time.Now().UTC(),
		Course:   strings.TrimSpace(course),
		MaxHoles: maxHoles,
	}
}
