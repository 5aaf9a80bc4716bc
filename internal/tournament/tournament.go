package tournament

import "github.com/google/uuid"

// New creates an empty pending tournament.
func New(name string) Tournament {
	return Tournament{
		ID:      uuid.New().String(),
		Name:    name,
		Teams:   []Team{},
		Matches: []Match{},
		Type:    TypeRoundRobin,
		Status:  StatusPending,
	}
}

// TeamByID looks up a team on the roster.
func (t Tournament) TeamByID(id string) (Team, bool) {
	for _, team := range t.Teams {
		if team.ID == id {
			return team, true
		}
	}
	return Team{}, false
}

// MatchIndexBetween finds the fixture for an unordered team pair, in either
// home/away orientation. The generator guarantees at most one such match.
// Returns -1 when the pair has no fixture.
func MatchIndexBetween(matches []Match, teamA, teamB string) int {
	for i, m := range matches {
		if (m.HomeTeamID == teamA && m.AwayTeamID == teamB) ||
			(m.HomeTeamID == teamB && m.AwayTeamID == teamA) {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy, so callers can hand out snapshots without
// sharing the underlying slices.
func (t Tournament) Clone() Tournament {
	out := t
	out.Teams = make([]Team, len(t.Teams))
	copy(out.Teams, t.Teams)
	out.Matches = make([]Match, len(t.Matches))
	for i, m := range t.Matches {
		mc := m
		mc.Score.Sets = make([]SetScore, len(m.Score.Sets))
		copy(mc.Score.Sets, m.Score.Sets)
		out.Matches[i] = mc
	}
	return out
}
