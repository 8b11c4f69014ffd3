package storage_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/golftracker/internal/models"
	"github.com/antigravity/golftracker/internal/storage"
)

func newPlayer(t *testing.T, name string, handicap *float64) *models.Player {
	t.Helper()
	player, err := models.NewPlayer(name, handicap)
	require.NoError(t, err)
	return player
}

func newCard(t *testing.T, playerID uuid.UUID, holes int, scored int) *models.Scorecard {
	t.Helper()
	pars := make(map[int]int, holes)
	for hole := 1; hole <= holes; hole++ {
		pars[hole] = 4
	}
	card, err := models.NewScorecard(playerID, holes, pars)
	require.NoError(t, err)
	for hole := 1; hole <= scored; hole++ {
		require.NoError(t, card.RecordScore(hole, 4))
	}
	return card
}

func assertSameCard(t *testing.T, want, got *models.Scorecard) {
	t.Helper()
	require.NotNil(t, got)
	assert.Equal(t, want.RoundID(), got.RoundID())
	assert.Equal(t, want.PlayerID(), got.PlayerID())
	assert.Equal(t, want.MaxHoles(), got.MaxHoles())
	for hole := 1; hole <= want.MaxHoles(); hole++ {
		wantPar, wantOK := want.Par(hole)
		gotPar, gotOK := got.Par(hole)
		assert.Equal(t, wantOK, gotOK, "par presence for hole %d", hole)
		assert.Equal(t, wantPar, gotPar, "par for hole %d", hole)

		wantStrokes, wantScored := want.Score(hole)
		gotStrokes, gotScored := got.Score(hole)
		assert.Equal(t, wantScored, gotScored, "score presence for hole %d", hole)
		assert.Equal(t, wantStrokes, gotStrokes, "score for hole %d", hole)
	}
}

// testRepositoryContract exercises the behavior every adapter must share.
func testRepositoryContract(t *testing.T, newRepo func(t *testing.T) storage.Repository) {
	t.Run("player round trip", func(t *testing.T) {
		repo := newRepo(t)
		handicap := 8.1
		player := newPlayer(t, "Lee Trevino", &handicap)

		require.NoError(t, repo.SavePlayer(player))
		got, err := repo.GetPlayer(player.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, player.ID, got.ID)
		assert.Equal(t, "Lee Trevino", got.Name)
		require.NotNil(t, got.Handicap)
		assert.Equal(t, 8.1, *got.Handicap)
	})

	t.Run("player without handicap survives", func(t *testing.T) {
		repo := newRepo(t)
		player := newPlayer(t, "Ben Hogan", nil)

		require.NoError(t, repo.SavePlayer(player))
		got, err := repo.GetPlayer(player.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Nil(t, got.Handicap)
	})

	t.Run("save player overwrites by id", func(t *testing.T) {
		repo := newRepo(t)
		player := newPlayer(t, "Old Name", nil)
		require.NoError(t, repo.SavePlayer(player))

		player.Name = "New Name"
		require.NoError(t, repo.SavePlayer(player))

		got, err := repo.GetPlayer(player.ID)
		require.NoError(t, err)
		assert.Equal(t, "New Name", got.Name)

		players, err := repo.ListPlayers()
		require.NoError(t, err)
		assert.Len(t, players, 1)
	})

	t.Run("get missing player is absence not error", func(t *testing.T) {
		repo := newRepo(t)
		got, err := repo.GetPlayer(uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("listings start empty", func(t *testing.T) {
		repo := newRepo(t)
		players, err := repo.ListPlayers()
		require.NoError(t, err)
		assert.Empty(t, players)

		scorecards, err := repo.ListScorecards()
		require.NoError(t, err)
		assert.Empty(t, scorecards)
	})

	t.Run("scorecard round trip preserves every field", func(t *testing.T) {
		repo := newRepo(t)
		card := newCard(t, uuid.New(), 9, 5)

		require.NoError(t, repo.SaveScorecard(card))
		got, err := repo.GetScorecard(card.RoundID())
		require.NoError(t, err)
		assertSameCard(t, card, got)
	})

	t.Run("completed scorecard round trip", func(t *testing.T) {
		repo := newRepo(t)
		card := newCard(t, uuid.New(), 9, 9)

		require.NoError(t, repo.SaveScorecard(card))
		got, err := repo.GetScorecard(card.RoundID())
		require.NoError(t, err)
		require.True(t, got.IsComplete())
		total, ok := got.TotalStrokes()
		require.True(t, ok)
		assert.Equal(t, 36, total)
	})

	t.Run("save scorecard overwrites by round id", func(t *testing.T) {
		repo := newRepo(t)
		card := newCard(t, uuid.New(), 9, 3)
		require.NoError(t, repo.SaveScorecard(card))

		require.NoError(t, card.RecordScore(4, 5))
		require.NoError(t, repo.SaveScorecard(card))

		got, err := repo.GetScorecard(card.RoundID())
		require.NoError(t, err)
		assertSameCard(t, card, got)

		scorecards, err := repo.ListScorecards()
		require.NoError(t, err)
		assert.Len(t, scorecards, 1)
	})

	t.Run("get missing scorecard is absence not error", func(t *testing.T) {
		repo := newRepo(t)
		got, err := repo.GetScorecard(uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("scorecards by player filters the listing", func(t *testing.T) {
		repo := newRepo(t)
		alice := uuid.New()
		bob := uuid.New()

		aliceCards := []*models.Scorecard{
			newCard(t, alice, 9, 9),
			newCard(t, alice, 18, 2),
		}
		for _, card := range aliceCards {
			require.NoError(t, repo.SaveScorecard(card))
		}
		require.NoError(t, repo.SaveScorecard(newCard(t, bob, 9, 0)))

		got, err := repo.GetScorecardsByPlayer(alice)
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, card := range got {
			assert.Equal(t, alice, card.PlayerID())
		}

		all, err := repo.ListScorecards()
		require.NoError(t, err)
		assert.Len(t, all, 3)

		none, err := repo.GetScorecardsByPlayer(uuid.New())
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}
