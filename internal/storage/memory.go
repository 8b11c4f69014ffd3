package storage

import (
	"github.com/google/uuid"

	"github.com/antigravity/golftracker/internal/models"
)

// MemoryRepository keeps every record in process memory. It mirrors the
// overwrite-by-id semantics of the other adapters and stores copies, so
// mutating a card after save (or one returned by a get) does not leak into
// the repository. Intended for tests and throwaway runs.
type MemoryRepository struct {
	players    map[uuid.UUID]models.Player
	scorecards map[uuid.UUID]*models.Scorecard
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		players:    make(map[uuid.UUID]models.Player),
		scorecards: make(map[uuid.UUID]*models.Scorecard),
	}
}

func (r *MemoryRepository) SavePlayer(player *models.Player) error {
	r.players[player.ID] = *player
	return nil
}

func (r *MemoryRepository) GetPlayer(id uuid.UUID) (*models.Player, error) {
	player, ok := r.players[id]
	if !ok {
		return nil, nil
	}
	return &player, nil
}

func (r *MemoryRepository) ListPlayers() ([]*models.Player, error) {
	var players []*models.Player
	for id := range r.players {
		player := r.players[id]
		players = append(players, &player)
	}
	return players, nil
}

func (r *MemoryRepository) SaveScorecard(scorecard *models.Scorecard) error {
	r.scorecards[scorecard.RoundID()] = scorecard.Clone()
	return nil
}

func (r *MemoryRepository) GetScorecard(roundID uuid.UUID) (*models.Scorecard, error) {
	scorecard, ok := r.scorecards[roundID]
	if !ok {
		return nil, nil
	}
	return scorecard.Clone(), nil
}

func (r *MemoryRepository) ListScorecards() ([]*models.Scorecard, error) {
	var scorecards []*models.Scorecard
	for _, scorecard := range r.scorecards {
		scorecards = append(scorecards, scorecard.Clone())
	}
	return scorecards, nil
}

func (r *MemoryRepository) GetScorecardsByPlayer(playerID uuid.UUID) ([]*models.Scorecard, error) {
	var matched []*models.Scorecard
	for _, scorecard := range r.scorecards {
		if scorecard.PlayerID() == playerID {
			matched = append(matched, scorecard.Clone())
		}
	}
	return matched, nil
}
