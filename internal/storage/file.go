package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/antigravity/golftracker/internal/golferr"
	"github.com/antigravity/golftracker/internal/models"
)

const (
	playersDir    = "players"
	scorecardsDir = "scorecards"
)

// FileRepository stores one pretty-printed JSON document per entity under a
// base directory, in "players" and "scorecards" subdirectories. Filenames
// are derived solely from the entity id. Subdirectories are created lazily
// on first write.
type FileRepository struct {
	baseDir string
}

// NewFileRepository creates the base directory when missing and returns the
// repository rooted there.
func NewFileRepository(baseDir string) (*FileRepository, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, &golferr.IOError{Op: "mkdir", Path: baseDir, Err: err}
	}
	return &FileRepository{baseDir: baseDir}, nil
}

func (r *FileRepository) playerPath(id uuid.UUID) string {
	return filepath.Join(r.baseDir, playersDir, id.String()+".json")
}

func (r *FileRepository) scorecardPath(roundID uuid.UUID) string {
	return filepath.Join(r.baseDir, scorecardsDir, roundID.String()+".json")
}

func (r *FileRepository) writeRecord(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &golferr.IOError{Op: "mkdir", Path: dir, Err: err}
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &golferr.SerializationError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &golferr.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// readRecord decodes the record at path into v. The first return is false
// when the file does not exist.
func (r *FileRepository) readRecord(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, &golferr.IOError{Op: "read", Path: path, Err: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, &golferr.SerializationError{Path: path, Err: err}
	}
	return true, nil
}

func (r *FileRepository) SavePlayer(player *models.Player) error {
	return r.writeRecord(r.playerPath(player.ID), player)
}

func (r *FileRepository) GetPlayer(id uuid.UUID) (*models.Player, error) {
	var player models.Player
	ok, err := r.readRecord(r.playerPath(id), &player)
	if err != nil || !ok {
		return nil, err
	}
	return &player, nil
}

func (r *FileRepository) ListPlayers() ([]*models.Player, error) {
	dir := filepath.Join(r.baseDir, playersDir)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &golferr.IOError{Op: "readdir", Path: dir, Err: err}
	}

	var players []*models.Player
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		var player models.Player
		ok, err := r.readRecord(filepath.Join(dir, entry.Name()), &player)
		if err != nil {
			return nil, err
		}
		if ok {
			players = append(players, &player)
		}
	}
	return players, nil
}

func (r *FileRepository) SaveScorecard(scorecard *models.Scorecard) error {
	return r.writeRecord(r.scorecardPath(scorecard.RoundID()), scorecard)
}

func (r *FileRepository) GetScorecard(roundID uuid.UUID) (*models.Scorecard, error) {
	var scorecard models.Scorecard
	ok, err := r.readRecord(r.scorecardPath(roundID), &scorecard)
	if err != nil || !ok {
		return nil, err
	}
	return &scorecard, nil
}

func (r *FileRepository) ListScorecards() ([]*models.Scorecard, error) {
	dir := filepath.Join(r.baseDir, scorecardsDir)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &golferr.IOError{Op: "readdir", Path: dir, Err: err}
	}

	var scorecards []*models.Scorecard
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		var scorecard models.Scorecard
		ok, err := r.readRecord(filepath.Join(dir, entry.Name()), &scorecard)
		if err != nil {
			return nil, err
		}
		if ok {
			scorecards = append(scorecards, &scorecard)
		}
	}
	return scorecards, nil
}

// GetScorecardsByPlayer filters the full listing; at this scale a secondary
// index is not worth its upkeep.
func (r *FileRepository) GetScorecardsByPlayer(playerID uuid.UUID) ([]*models.Scorecard, error) {
	all, err := r.ListScorecards()
	if err != nil {
		return nil, err
	}
	var matched []*models.Scorecard
	for _, scorecard := range all {
		if scorecard.PlayerID() == playerID {
			matched = append(matched, scorecard)
		}
	}
	return matched, nil
}
