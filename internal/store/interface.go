package store

import (
	"github.com/B21v/sports-tournament-manager/internal/reconcile"
	"github.com/B21v/sports-tournament-manager/internal/tournament"
)

// TournamentStore owns the tournament collection and is the only writer of
// tournament state. Every command persists the full list before returning.
// Destructive commands (Delete, RemoveTeam, Reset) mutate unconditionally
// once invoked; confirming them with the user is the caller's job.
type TournamentStore interface {
	List() []tournament.Tournament
	Get(id string) (tournament.Tournament, error)
	Create(name string) (tournament.Tournament, error)
	Rename(id, name string) error
	Delete(id string) error
	AddTeam(id, teamName string) (tournament.Team, error)
	RemoveTeam(id, teamID string) error
	Start(id string) error
	Reset(id string) error
	RecordScore(id, matchID, text, asTeamID string) error
	ImportResults(id string, candidates []reconcile.Candidate) ([]reconcile.Result, error)
	ReplaceAll(tournaments []tournament.Tournament) error
}
