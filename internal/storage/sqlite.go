package storage

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/antigravity/golftracker/internal/golferr"
	"github.com/antigravity/golftracker/internal/models"
)

// SQLiteRepository persists players and scorecards in a single SQLite
// database file. Scorecards split into a header row and one row per hole.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (creating when missing) the database at path and
// ensures the schema exists.
func NewSQLiteRepository(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &golferr.IOError{Op: "open", Path: path, Err: err}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &golferr.IOError{Op: "open", Path: path, Err: err}
	}
	repo := &SQLiteRepository{db: db}
	if err := repo.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error { return r.db.Close() }

func (r *SQLiteRepository) createTables() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS players (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			handicap REAL
		);`,
		`CREATE TABLE IF NOT EXISTS scorecards (
			round_id TEXT PRIMARY KEY,
			player_id TEXT NOT NULL,
			max_holes INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS scorecard_holes (
			round_id TEXT NOT NULL,
			hole_number INTEGER NOT NULL,
			par INTEGER NOT NULL,
			strokes INTEGER,
			PRIMARY KEY (round_id, hole_number),
			FOREIGN KEY (round_id) REFERENCES scorecards(round_id)
		);`,
	}
	for _, stmt := range statements {
		if _, err := r.db.Exec(stmt); err != nil {
			return &golferr.IOError{Op: "migrate", Path: "sqlite", Err: err}
		}
	}
	return nil
}

func (r *SQLiteRepository) SavePlayer(player *models.Player) error {
	_, err := r.db.Exec(
		`INSERT INTO players (id, name, handicap) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name, handicap = excluded.handicap`,
		player.ID.String(), player.Name, player.Handicap,
	)
	if err != nil {
		return &golferr.IOError{Op: "save player", Path: player.ID.String(), Err: err}
	}
	return nil
}

func (r *SQLiteRepository) GetPlayer(id uuid.UUID) (*models.Player, error) {
	row := r.db.QueryRow("SELECT id, name, handicap FROM players WHERE id = ?", id.String())
	player, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return player, err
}

func (r *SQLiteRepository) ListPlayers() ([]*models.Player, error) {
	rows, err := r.db.Query("SELECT id, name, handicap FROM players")
	if err != nil {
		return nil, &golferr.IOError{Op: "list players", Path: "players", Err: err}
	}
	defer rows.Close()

	var players []*models.Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	if err := rows.Err(); err != nil {
		return nil, &golferr.IOError{Op: "list players", Path: "players", Err: err}
	}
	return players, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (*models.Player, error) {
	var (
		idText   string
		name     string
		handicap sql.NullFloat64
	)
	if err := row.Scan(&idText, &name, &handicap); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, &golferr.IOError{Op: "scan player", Path: "players", Err: err}
	}
	id, err := uuid.Parse(idText)
	if err != nil {
		return nil, &golferr.SerializationError{Path: "players/" + idText, Err: err}
	}
	player := &models.Player{ID: id, Name: name}
	if handicap.Valid {
		player.Handicap = &handicap.Float64
	}
	return player, nil
}

// SaveScorecard overwrites the whole card in one transaction: upsert the
// header, then replace every hole row.
func (r *SQLiteRepository) SaveScorecard(scorecard *models.Scorecard) error {
	roundID := scorecard.RoundID().String()

	tx, err := r.db.Begin()
	if err != nil {
		return &golferr.IOError{Op: "save scorecard", Path: roundID, Err: err}
	}

	_, err = tx.Exec(
		`INSERT INTO scorecards (round_id, player_id, max_holes) VALUES (?, ?, ?)
		 ON CONFLICT(round_id) DO UPDATE SET player_id = excluded.player_id, max_holes = excluded.max_holes`,
		roundID, scorecard.PlayerID().String(), scorecard.MaxHoles(),
	)
	if err != nil {
		tx.Rollback()
		return &golferr.IOError{Op: "save scorecard", Path: roundID, Err: err}
	}

	if _, err := tx.Exec("DELETE FROM scorecard_holes WHERE round_id = ?", roundID); err != nil {
		tx.Rollback()
		return &golferr.IOError{Op: "save scorecard", Path: roundID, Err: err}
	}

	for hole := 1; hole <= scorecard.MaxHoles(); hole++ {
		par, ok := scorecard.Par(hole)
		if !ok {
			continue
		}
		var strokes any
		if s, scored := scorecard.Score(hole); scored {
			strokes = s
		}
		_, err := tx.Exec(
			"INSERT INTO scorecard_holes (round_id, hole_number, par, strokes) VALUES (?, ?, ?, ?)",
			roundID, hole, par, strokes,
		)
		if err != nil {
			tx.Rollback()
			return &golferr.IOError{Op: "save scorecard", Path: roundID, Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &golferr.IOError{Op: "save scorecard", Path: roundID, Err: err}
	}
	return nil
}

func (r *SQLiteRepository) GetScorecard(roundID uuid.UUID) (*models.Scorecard, error) {
	var (
		playerText string
		maxHoles   int
	)
	err := r.db.QueryRow(
		"SELECT player_id, max_holes FROM scorecards WHERE round_id = ?", roundID.String(),
	).Scan(&playerText, &maxHoles)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &golferr.IOError{Op: "get scorecard", Path: roundID.String(), Err: err}
	}
	playerID, err := uuid.Parse(playerText)
	if err != nil {
		return nil, &golferr.SerializationError{Path: "scorecards/" + roundID.String(), Err: err}
	}
	return r.loadCard(roundID, playerID, maxHoles)
}

func (r *SQLiteRepository) loadCard(roundID, playerID uuid.UUID, maxHoles int) (*models.Scorecard, error) {
	rows, err := r.db.Query(
		"SELECT hole_number, par, strokes FROM scorecard_holes WHERE round_id = ?", roundID.String(),
	)
	if err != nil {
		return nil, &golferr.IOError{Op: "get scorecard", Path: roundID.String(), Err: err}
	}
	defer rows.Close()

	pars := make(map[int]int)
	scores := make(map[int]int)
	for rows.Next() {
		var (
			hole    int
			par     int
			strokes sql.NullInt64
		)
		if err := rows.Scan(&hole, &par, &strokes); err != nil {
			return nil, &golferr.IOError{Op: "get scorecard", Path: roundID.String(), Err: err}
		}
		pars[hole] = par
		if strokes.Valid {
			scores[hole] = int(strokes.Int64)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, &golferr.IOError{Op: "get scorecard", Path: roundID.String(), Err: err}
	}
	return models.LoadScorecard(roundID, playerID, maxHoles, pars, scores), nil
}

func (r *SQLiteRepository) ListScorecards() ([]*models.Scorecard, error) {
	return r.queryCards("SELECT round_id, player_id, max_holes FROM scorecards")
}

func (r *SQLiteRepository) GetScorecardsByPlayer(playerID uuid.UUID) ([]*models.Scorecard, error) {
	return r.queryCards(
		"SELECT round_id, player_id, max_holes FROM scorecards WHERE player_id = ?",
		playerID.String(),
	)
}

func (r *SQLiteRepository) queryCards(query string, args ...any) ([]*models.Scorecard, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, &golferr.IOError{Op: "list scorecards", Path: "scorecards", Err: err}
	}
	defer rows.Close()

	type header struct {
		roundID  uuid.UUID
		playerID uuid.UUID
		maxHoles int
	}
	var headers []header
	for rows.Next() {
		var roundText, playerText string
		var h header
		if err := rows.Scan(&roundText, &playerText, &h.maxHoles); err != nil {
			return nil, &golferr.IOError{Op: "list scorecards", Path: "scorecards", Err: err}
		}
		if h.roundID, err = uuid.Parse(roundText); err != nil {
			return nil, &golferr.SerializationError{Path: "scorecards/" + roundText, Err: err}
		}
		if h.playerID, err = uuid.Parse(playerText); err != nil {
			return nil, &golferr.SerializationError{Path: "scorecards/" + roundText, Err: err}
		}
		headers = append(headers, h)
	}
	if err := rows.Err(); err != nil {
		return nil, &golferr.IOError{Op: "list scorecards", Path: "scorecards", Err: err}
	}

	var scorecards []*models.Scorecard
	for _, h := range headers {
		scorecard, err := r.loadCard(h.roundID, h.playerID, h.maxHoles)
		if err != nil {
			return nil, err
		}
		scorecards = append(scorecards, scorecard)
	}
	return scorecards, nil
}
