// Package handlers serves the JSON API over a repository.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/antigravity/golftracker/internal/course"
	"github.com/antigravity/golftracker/internal/golferr"
	"github.com/antigravity/golftracker/internal/models"
	"github.com/antigravity/golftracker/internal/storage"
)

// Handlers carries the dependencies the endpoints share.
type Handlers struct {
	repo   storage.Repository
	logger *slog.Logger
}

func New(repo storage.Repository, logger *slog.Logger) *Handlers {
	return &Handlers{repo: repo, logger: logger}
}

// Routes mounts every endpoint on a fresh router.
func (h *Handlers) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/players", h.ListPlayers)
	r.Post("/players", h.CreatePlayer)
	r.Get("/players/{id}", h.GetPlayer)
	r.Get("/players/{id}/stats", h.PlayerStatistics)
	r.Get("/scorecards", h.ListScorecards)
	r.Post("/scorecards", h.CreateScorecard)
	r.Get("/scorecards/{id}", h.GetScorecard)
	r.Post("/scorecards/{id}/scores", h.RecordScore)
	r.Get("/courses", h.ListCourses)
	r.Post("/courses/import", h.ImportCourse)
	return r
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response", "error", err)
	}
}

// writeError maps the taxonomy onto status codes: validation 400, lookup
// miss 404, everything else 500.
func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case golferr.IsValidation(err):
		status = http.StatusBadRequest
	case golferr.IsNotFound(err):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "error", err)
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func parseID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

func (h *Handlers) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.repo.ListPlayers()
	if err != nil {
		h.writeError(w, err)
		return
	}
	if players == nil {
		players = []*models.Player{}
	}
	h.writeJSON(w, http.StatusOK, players)
}

func (h *Handlers) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string   `json:"name"`
		Handicap *float64 `json:"handicap"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	player, err := models.NewPlayer(req.Name, req.Handicap)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.repo.SavePlayer(player); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, player)
}

func (h *Handlers) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	player, err := h.repo.GetPlayer(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if player == nil {
		h.writeError(w, &golferr.PlayerNotFoundError{ID: id})
		return
	}
	h.writeJSON(w, http.StatusOK, player)
}

func (h *Handlers) PlayerStatistics(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	player, err := h.repo.GetPlayer(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if player == nil {
		h.writeError(w, &golferr.PlayerNotFoundError{ID: id})
		return
	}

	scorecards, err := h.repo.GetScorecardsByPlayer(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, models.StatisticsFromScorecards(scorecards))
}

func (h *Handlers) ListScorecards(w http.ResponseWriter, r *http.Request) {
	var (
		scorecards []*models.Scorecard
		err        error
	)
	if playerParam := r.URL.Query().Get("player_id"); playerParam != "" {
		playerID, parseErr := uuid.Parse(playerParam)
		if parseErr != nil {
			http.Error(w, parseErr.Error(), http.StatusBadRequest)
			return
		}
		scorecards, err = h.repo.GetScorecardsByPlayer(playerID)
	} else {
		scorecards, err = h.repo.ListScorecards()
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	if scorecards == nil {
		scorecards = []*models.Scorecard{}
	}
	h.writeJSON(w, http.StatusOK, scorecards)
}

func (h *Handlers) CreateScorecard(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PlayerID uuid.UUID   `json:"player_id"`
		Holes    int         `json:"holes"`
		Course   string      `json:"course"`
		Pars     map[int]int `json:"pars"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Holes == 0 {
		req.Holes = 18
	}

	player, err := h.repo.GetPlayer(req.PlayerID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if player == nil {
		h.writeError(w, &golferr.PlayerNotFoundError{ID: req.PlayerID})
		return
	}

	// An explicit layout (e.g. one returned by the course importer) beats
	// the catalog lookup.
	pars := req.Pars
	if len(pars) == 0 {
		pars = course.Pars(req.Course, req.Holes)
	}

	scorecard, err := models.NewScorecard(req.PlayerID, req.Holes, pars)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.repo.SaveScorecard(scorecard); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, scorecard)
}

func (h *Handlers) GetScorecard(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	scorecard, err := h.repo.GetScorecard(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if scorecard == nil {
		h.writeError(w, &golferr.RoundNotFoundError{ID: id})
		return
	}
	h.writeJSON(w, http.StatusOK, scorecard)
}

func (h *Handlers) RecordScore(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var req struct {
		Hole    int `json:"hole"`
		Strokes int `json:"strokes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	scorecard, err := h.repo.GetScorecard(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if scorecard == nil {
		h.writeError(w, &golferr.RoundNotFoundError{ID: id})
		return
	}

	if err := scorecard.RecordScore(req.Hole, req.Strokes); err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.repo.SaveScorecard(scorecard); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, scorecard)
}

func (h *Handlers) ListCourses(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, course.Names())
}

// ImportCourse accepts a multipart upload of a course layout, as CSV
// (hole,par) or as an HTML scorecard page, and returns the parsed layout so
// the caller can feed it back into scorecard creation.
func (h *Handlers) ImportCourse(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	var pars map[int]int
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".html", ".htm":
		pars, err = course.ParseHTML(file)
	default:
		pars, err = course.ParseCSV(file)
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"holes": len(pars),
		"pars":  pars,
	})
}
