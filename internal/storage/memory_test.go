package storage_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigravity/golftracker/internal/storage"
)

func TestMemoryRepositoryContract(t *testing.T) {
	testRepositoryContract(t, func(t *testing.T) storage.Repository {
		return storage.NewMemoryRepository()
	})
}

func TestMemoryRepositoryStoresCopies(t *testing.T) {
	repo := storage.NewMemoryRepository()
	card := newCard(t, uuid.New(), 9, 1)
	require.NoError(t, repo.SaveScorecard(card))

	// Mutating the caller's card after save must not reach the store.
	require.NoError(t, card.RecordScore(2, 5))
	stored, err := repo.GetScorecard(card.RoundID())
	require.NoError(t, err)
	_, scored := stored.Score(2)
	assert.False(t, scored)

	// Mutating a returned card must not reach the store either.
	require.NoError(t, stored.RecordScore(3, 4))
	again, err := repo.GetScorecard(card.RoundID())
	require.NoError(t, err)
	_, scored = again.Score(3)
	assert.False(t, scored)
}
