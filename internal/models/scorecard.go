package models

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/antigravity/golftracker/internal/golferr"
	"github.com/antigravity/golftracker/internal/validate"
)

// Scorecard is the per-hole stroke record for one round. The par layout is
// fixed at construction and every score passes validation before it lands in
// the map, so a card can never hold an out-of-range value. Both maps are
// owned exclusively by the card; callers only reach them through the
// accessors.
type Scorecard struct {
	roundID  uuid.UUID
	playerID uuid.UUID
	maxHoles int
	scores   map[int]int
	pars     map[int]int
}

// NewScorecard builds a card for a fresh round. Every (hole, par) pair in
// the layout is validated; the first violation aborts construction. The
// layout is copied, so later changes to the caller's map do not reach the
// card.
func NewScorecard(playerID uuid.UUID, maxHoles int, pars map[int]int) (*Scorecard, error) {
	for hole, par := range pars {
		if err := validate.HoleNumber(hole, maxHoles); err != nil {
			return nil, err
		}
		if err := validate.Par(par); err != nil {
			return nil, err
		}
	}
	owned := make(map[int]int, len(pars))
	for hole, par := range pars {
		owned[hole] = par
	}
	return &Scorecard{
		roundID:  uuid.New(),
		playerID: playerID,
		maxHoles: maxHoles,
		scores:   make(map[int]int),
		pars:     owned,
	}, nil
}

// LoadScorecard rebuilds a card from persisted state. Storage adapters call
// it with rows they wrote through NewScorecard and RecordScore, so the
// values are trusted as previously validated. Both maps are copied.
func LoadScorecard(roundID, playerID uuid.UUID, maxHoles int, pars, scores map[int]int) *Scorecard {
	sc := &Scorecard{
		roundID:  roundID,
		playerID: playerID,
		maxHoles: maxHoles,
		scores:   make(map[int]int, len(scores)),
		pars:     make(map[int]int, len(pars)),
	}
	for hole, par := range pars {
		sc.pars[hole] = par
	}
	for hole, strokes := range scores {
		sc.scores[hole] = strokes
	}
	return sc
}

func (s *Scorecard) RoundID() uuid.UUID  { return s.roundID }
func (s *Scorecard) PlayerID() uuid.UUID { return s.playerID }
func (s *Scorecard) MaxHoles() int       { return s.maxHoles }

// Par returns the par for a hole, false when the layout has no entry for it.
func (s *Scorecard) Par(hole int) (int, bool) {
	par, ok := s.pars[hole]
	return par, ok
}

// Score returns the recorded strokes for a hole, false when unscored.
func (s *Scorecard) Score(hole int) (int, bool) {
	strokes, ok := s.scores[hole]
	return strokes, ok
}

// RecordScore validates and stores the strokes for a hole. Recording the
// same hole twice overwrites; last write wins. A failed validation leaves
// the card untouched.
func (s *Scorecard) RecordScore(hole, strokes int) error {
	if err := validate.HoleNumber(hole, s.maxHoles); err != nil {
		return err
	}
	par, ok := s.pars[hole]
	if !ok {
		// In range but absent from the layout: recoverable, not a panic.
		return &golferr.UnknownHoleError{Hole: hole}
	}
	if err := validate.Score(strokes, hole, par); err != nil {
		return err
	}
	s.scores[hole] = strokes
	return nil
}

// IsComplete reports whether every hole has a score. Always derived from the
// score map so it cannot drift from the recorded data.
func (s *Scorecard) IsComplete() bool {
	return len(s.scores) == s.maxHoles
}

// TotalStrokes sums the recorded strokes. It reports false until the card is
// complete, so a partial round is never mistaken for a final one.
func (s *Scorecard) TotalStrokes() (int, bool) {
	if !s.IsComplete() {
		return 0, false
	}
	total := 0
	for _, strokes := range s.scores {
		total += strokes
	}
	return total, true
}

// ScoreRelativeToPar is total strokes minus total par, negative when under.
// Like TotalStrokes it reports false until the card is complete.
func (s *Scorecard) ScoreRelativeToPar() (int, bool) {
	total, ok := s.TotalStrokes()
	if !ok {
		return 0, false
	}
	totalPar := 0
	for _, par := range s.pars {
		totalPar += par
	}
	return total - totalPar, true
}

// Clone returns an independent copy of the card.
func (s *Scorecard) Clone() *Scorecard {
	return LoadScorecard(s.roundID, s.playerID, s.maxHoles, s.pars, s.scores)
}

type scorecardJSON struct {
	RoundID  uuid.UUID   `json:"round_id"`
	PlayerID uuid.UUID   `json:"player_id"`
	MaxHoles int         `json:"max_holes"`
	Scores   map[int]int `json:"scores"`
	Pars     map[int]int `json:"pars"`
}

func (s *Scorecard) MarshalJSON() ([]byte, error) {
	return json.Marshal(scorecardJSON{
		RoundID:  s.roundID,
		PlayerID: s.playerID,
		MaxHoles: s.maxHoles,
		Scores:   s.scores,
		Pars:     s.pars,
	})
}

func (s *Scorecard) UnmarshalJSON(data []byte) error {
	var raw scorecardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.roundID = raw.RoundID
	s.playerID = raw.PlayerID
	s.maxHoles = raw.MaxHoles
	s.scores = raw.Scores
	s.pars = raw.Pars
	if s.scores == nil {
		s.scores = make(map[int]int)
	}
	if s.pars == nil {
		s.pars = make(map[int]int)
	}
	return nil
}
