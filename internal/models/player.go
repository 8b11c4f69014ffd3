package models

import (
	"strings"

	"github.com/google/uuid"

	"github.com/antigravity/golftracker/internal/golferr"
)

// Player is a registered golfer. Handicap is optional; nil means none on
// record.
type Player struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Handicap *float64  `json:"handicap,omitempty"`
}

// NewPlayer creates a player with a fresh id. The name is trimmed and must
// not be empty.
func NewPlayer(name string, handicap *float64) (*Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, golferr.New("player name cannot be empty")
	}
	return &Player{ID: uuid.New(), Name: name, Handicap: handicap}, nil
}
