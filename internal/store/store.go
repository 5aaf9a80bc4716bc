// Package store implements the tournament collection owner: command methods
// over an in-memory list, with the full list persisted as a single JSON
// snapshot after every mutation.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/B21v/sports-tournament-manager/internal/metrics"
	"github.com/B21v/sports-tournament-manager/internal/reconcile"
	"github.com/B21v/sports-tournament-manager/internal/schedule"
	"github.com/B21v/sports-tournament-manager/internal/score"
	"github.com/B21v/sports-tournament-manager/internal/tournament"
)

// snapshotKey is the single storage key holding the serialized tournament
// list. No versioning, no diffing: the whole document is rewritten on every
// change and loaded once at startup.
const snapshotKey = "tournament-list"

func newTeamID() string {
	return uuid.New().String()
}

type store struct {
	db          *sql.DB
	mu          sync.RWMutex
	tournaments []tournament.Tournament
	engine      *reconcile.Engine
	metrics     metrics.Metrics
}

// New creates a TournamentStore backed by db and loads the existing snapshot.
func New(db *sql.DB, m metrics.Metrics) (TournamentStore, error) {
	s := &store{
		db:      db,
		engine:  reconcile.New(m),
		metrics: m,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *store) load() error {
	var data string
	err := s.db.QueryRow("SELECT data FROM snapshots WHERE key = ?", snapshotKey).Scan(&data)
	if err == sql.ErrNoRows {
		log.Info("No tournament snapshot found, starting empty")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}
	if err := json.Unmarshal([]byte(data), &s.tournaments); err != nil {
		return fmt.Errorf("failed to decode snapshot: %w", err)
	}
	log.Info("Loaded tournament snapshot", "tournaments", len(s.tournaments))
	return nil
}

// persistLocked rewrites the whole snapshot. Callers hold the write lock.
func (s *store) persistLocked() error {
	start := time.Now()
	data, err := json.Marshal(s.tournaments)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO snapshots (key, data) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data
	`, snapshotKey, string(data))
	if err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	s.metrics.ObservePersistDuration(time.Since(start).Seconds())
	return nil
}

func (s *store) indexLocked(id string) int {
	for i := range s.tournaments {
		if s.tournaments[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *store) List() []tournament.Tournament {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]tournament.Tournament, len(s.tournaments))
	for i, t := range s.tournaments {
		out[i] = t.Clone()
	}
	return out
}

func (s *store) Get(id string) (tournament.Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexLocked(id)
	if i < 0 {
		return tournament.Tournament{}, fmt.Errorf("tournament %s not found", id)
	}
	return s.tournaments[i].Clone(), nil
}

func (s *store) Create(name string) (tournament.Tournament, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return tournament.Tournament{}, fmt.Errorf("tournament name must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	t := tournament.New(name)
	s.tournaments = append(s.tournaments, t)
	if err := s.persistLocked(); err != nil {
		return tournament.Tournament{}, err
	}
	log.Info("Created tournament", "id", t.ID, "name", t.Name)
	return t.Clone(), nil
}

func (s *store) Rename(id, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("tournament %s not found", id)
	}
	s.tournaments[i].Name = name
	return s.persistLocked()
}

func (s *store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("tournament %s not found", id)
	}
	s.tournaments = append(s.tournaments[:i], s.tournaments[i+1:]...)
	log.Info("Deleted tournament", "id", id)
	return s.persistLocked()
}

func (s *store) AddTeam(id, teamName string) (tournament.Team, error) {
	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return tournament.Team{}, fmt.Errorf("team name must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return tournament.Team{}, fmt.Errorf("tournament %s not found", id)
	}
	team := tournament.Team{ID: newTeamID(), Name: teamName}
	s.tournaments[i].Teams = append(s.tournaments[i].Teams, team)
	if err := s.persistLocked(); err != nil {
		return tournament.Team{}, err
	}
	log.Info("Added team", "tournamentID", id, "teamID", team.ID, "name", team.Name)
	return team, nil
}

// RemoveTeam drops the team and cascades to every match referencing it, so
// no match ever points at a missing team.
func (s *store) RemoveTeam(id, teamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("tournament %s not found", id)
	}
	t := &s.tournaments[i]

	teams := t.Teams[:0]
	found := false
	for _, team := range t.Teams {
		if team.ID == teamID {
			found = true
			continue
		}
		teams = append(teams, team)
	}
	if !found {
		return fmt.Errorf("team %s not found in tournament %s", teamID, id)
	}
	t.Teams = teams

	matches := t.Matches[:0]
	for _, m := range t.Matches {
		if m.HomeTeamID == teamID || m.AwayTeamID == teamID {
			continue
		}
		matches = append(matches, m)
	}
	t.Matches = matches

	log.Info("Removed team", "tournamentID", id, "teamID", teamID)
	return s.persistLocked()
}

// Start generates the round-robin fixture list and moves the tournament to
// in-progress. Generation is one-shot: it would overwrite existing matches
// and their scores, so it is only allowed while the tournament is pending.
func (s *store) Start(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("tournament %s not found", id)
	}
	t := &s.tournaments[i]
	if t.Status != tournament.StatusPending {
		return fmt.Errorf("tournament %s has already been started", id)
	}
	if len(t.Teams) < 2 {
		return fmt.Errorf("tournament %s needs at least two teams to start", id)
	}
	t.Matches = schedule.Generate(t.Teams)
	t.Status = tournament.StatusInProgress
	log.Info("Started tournament", "id", id, "teams", len(t.Teams), "matches", len(t.Matches))
	return s.persistLocked()
}

// Reset discards all teams and matches, keeping only id and name.
func (s *store) Reset(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("tournament %s not found", id)
	}
	t := &s.tournaments[i]
	t.Teams = []tournament.Team{}
	t.Matches = []tournament.Match{}
	t.Status = tournament.StatusPending
	log.Info("Reset tournament", "id", id)
	return s.persistLocked()
}

// RecordScore parses the free-text score and stores it on the match. When
// asTeamID names the away side, the text is treated as written from that
// team's perspective and each set is swapped into the fixture's fixed
// home/away orientation.
func (s *store) RecordScore(id, matchID, text, asTeamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("tournament %s not found", id)
	}
	t := &s.tournaments[i]
	for mi := range t.Matches {
		m := &t.Matches[mi]
		if m.ID != matchID {
			continue
		}
		perspective := score.Home
		if asTeamID != "" && asTeamID == m.AwayTeamID {
			perspective = score.Away
		}
		m.Score = score.Parse(text, perspective)
		m.IsCompleted = m.Score.IsCompleted
		s.metrics.IncScoresRecorded()
		log.Info("Recorded score", "tournamentID", id, "matchID", matchID, "score", text)
		return s.persistLocked()
	}
	return fmt.Errorf("match %s not found in tournament %s", matchID, id)
}

// ImportResults runs the reconciliation engine over the candidates and
// replaces the tournament with the merged snapshot. The per-candidate report
// is returned so callers can surface partial imports.
func (s *store) ImportResults(id string, candidates []reconcile.Candidate) ([]reconcile.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return nil, fmt.Errorf("tournament %s not found", id)
	}
	next, results := s.engine.Apply(s.tournaments[i], candidates)
	s.tournaments[i] = next
	if err := s.persistLocked(); err != nil {
		return results, err
	}
	return results, nil
}

// ReplaceAll swaps in a full tournament list, used when restoring a backup.
func (s *store) ReplaceAll(tournaments []tournament.Tournament) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tournaments = tournaments
	log.Info("Replaced tournament list", "tournaments", len(tournaments))
	return s.persistLocked()
}
