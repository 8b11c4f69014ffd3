// Package storage persists players and scorecards behind a small repository
// contract, with file, SQLite and in-memory adapters.
package storage

import (
	"github.com/google/uuid"

	"github.com/antigravity/golftracker/internal/models"
)

// Repository is the persistence contract for players and scorecards.
//
// Saves overwrite any existing record with the same id. Gets return
// (nil, nil) when the id is unknown; absence is not an error, only
// unreadable or malformed data is. Every call is synchronous and blocks
// until the underlying operation finishes. The contract carries no locking:
// concurrent writers to the same id race and the last completed write wins,
// so a concurrent deployment must add mutual exclusion per id on top.
type Repository interface {
	SavePlayer(player *models.Player) error
	GetPlayer(id uuid.UUID) (*models.Player, error)
	ListPlayers() ([]*models.Player, error)

	SaveScorecard(scorecard *models.Scorecard) error
	GetScorecard(roundID uuid.UUID) (*models.Scorecard, error)
	GetScorecardsByPlayer(playerID uuid.UUID) ([]*models.Scorecard, error)
	ListScorecards() ([]*models.Scorecard, error)
}
