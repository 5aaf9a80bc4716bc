package tournament

// Status is the lifecycle state of a tournament.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// TypeRoundRobin is the only tournament format supported: every team plays
// every other team exactly once.
const TypeRoundRobin = "round-robin"

// Team is a registered participant. The name can be a single player or a
// doubles pair ("Ivanov / Petrov").
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SetScore holds one set, always stored from the fixture's home perspective.
type SetScore struct {
	HomeScore int `json:"homeScore"`
	AwayScore int `json:"awayScore"`
}

// Score is the full set sequence of a match. Sets empty and IsCompleted false
// is the "not yet played" state.
type Score struct {
	Sets        []SetScore `json:"sets"`
	IsCompleted bool       `json:"isCompleted"`
}

// Match is a single fixture. Home/away assignment is fixed at generation time
// and never swapped; IsCompleted mirrors Score.IsCompleted.
type Match struct {
	ID          string `json:"id"`
	HomeTeamID  string `json:"homeTeamId"`
	AwayTeamID  string `json:"awayTeamId"`
	Score       Score  `json:"score"`
	IsCompleted bool   `json:"isCompleted"`
}

// Tournament is the root record. Matches exist only once the tournament has
// been started.
type Tournament struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Teams   []Team  `json:"teams"`
	Matches []Match `json:"matches"`
	Type    string  `json:"type"`
	Status  Status  `json:"status"`
}
