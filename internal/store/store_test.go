package store_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/B21v/sports-tournament-manager/internal/database"
	"github.com/B21v/sports-tournament-manager/internal/metrics"
	"github.com/B21v/sports-tournament-manager/internal/reconcile"
	"github.com/B21v/sports-tournament-manager/internal/store"
	"github.com/B21v/sports-tournament-manager/internal/tournament"
)

func setupTestStore(t *testing.T) (store.TournamentStore, *sql.DB, *metrics.Mock, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	mock := metrics.NewMock()
	st, err := store.New(db, mock)
	require.NoError(t, err)

	return st, db, mock, dbTeardown
}

func startedTournament(t *testing.T, st store.TournamentStore, teamNames ...string) tournament.Tournament {
	t.Helper()

	trn, err := st.Create("Club Open")
	require.NoError(t, err)
	for _, name := range teamNames {
		_, err := st.AddTeam(trn.ID, name)
		require.NoError(t, err)
	}
	require.NoError(t, st.Start(trn.ID))

	trn, err = st.Get(trn.ID)
	require.NoError(t, err)
	return trn
}

func TestCreateAndList(t *testing.T) {
	st, _, _, teardown := setupTestStore(t)
	defer teardown()

	assert.Empty(t, st.List())

	trn, err := st.Create("Spring Cup")
	require.NoError(t, err)
	assert.NotEmpty(t, trn.ID)
	assert.Equal(t, "Spring Cup", trn.Name)
	assert.Equal(t, tournament.StatusPending, trn.Status)

	_, err = st.Create("   ")
	assert.Error(t, err)

	list := st.List()
	require.Len(t, list, 1)
	assert.Equal(t, trn.ID, list[0].ID)
}

func TestRenameAndDelete(t *testing.T) {
	st, _, _, teardown := setupTestStore(t)
	defer teardown()

	trn, err := st.Create("Spring Cup")
	require.NoError(t, err)

	require.NoError(t, st.Rename(trn.ID, "Autumn Cup"))
	got, err := st.Get(trn.ID)
	require.NoError(t, err)
	assert.Equal(t, "Autumn Cup", got.Name)

	require.NoError(t, st.Delete(trn.ID))
	_, err = st.Get(trn.ID)
	assert.Error(t, err)
	assert.Error(t, st.Delete(trn.ID))
}

func TestStartGeneratesFixtures(t *testing.T) {
	st, _, _, teardown := setupTestStore(t)
	defer teardown()

	trn := startedTournament(t, st, "Alpha", "Beta", "Gamma")

	assert.Equal(t, tournament.StatusInProgress, trn.Status)
	assert.Len(t, trn.Matches, 3)
}

func TestStartGuards(t *testing.T) {
	st, _, _, teardown := setupTestStore(t)
	defer teardown()

	t.Run("needs at least two teams", func(t *testing.T) {
		trn, err := st.Create("Lonely Cup")
		require.NoError(t, err)
		_, err = st.AddTeam(trn.ID, "Alpha")
		require.NoError(t, err)
		assert.Error(t, st.Start(trn.ID))
	})

	t.Run("cannot start twice", func(t *testing.T) {
		trn := startedTournament(t, st, "Alpha", "Beta")
		err := st.Start(trn.ID)
		assert.ErrorContains(t, err, "already been started")
	})
}

func TestRemoveTeamCascadesToMatches(t *testing.T) {
	st, _, _, teardown := setupTestStore(t)
	defer teardown()

	trn := startedTournament(t, st, "Alpha", "Beta", "Gamma")
	require.Len(t, trn.Matches, 3)

	require.NoError(t, st.RemoveTeam(trn.ID, trn.Teams[0].ID))

	got, err := st.Get(trn.ID)
	require.NoError(t, err)
	assert.Len(t, got.Teams, 2)
	require.Len(t, got.Matches, 1)
	assert.NotEqual(t, trn.Teams[0].ID, got.Matches[0].HomeTeamID)
	assert.NotEqual(t, trn.Teams[0].ID, got.Matches[0].AwayTeamID)

	assert.Error(t, st.RemoveTeam(trn.ID, "no-such-team"))
}

func TestRecordScore(t *testing.T) {
	st, _, mock, teardown := setupTestStore(t)
	defer teardown()

	trn := startedTournament(t, st, "Alpha", "Beta")
	m := trn.Matches[0]

	t.Run("home perspective by default", func(t *testing.T) {
		require.NoError(t, st.RecordScore(trn.ID, m.ID, "6-4, 6-3", ""))

		got, err := st.Get(trn.ID)
		require.NoError(t, err)
		stored := got.Matches[0]
		assert.True(t, stored.IsCompleted)
		require.Len(t, stored.Score.Sets, 2)
		assert.Equal(t, tournament.SetScore{HomeScore: 6, AwayScore: 4}, stored.Score.Sets[0])
	})

	t.Run("away perspective swaps each set", func(t *testing.T) {
		require.NoError(t, st.RecordScore(trn.ID, m.ID, "6-4, 6-3", m.AwayTeamID))

		got, err := st.Get(trn.ID)
		require.NoError(t, err)
		stored := got.Matches[0]
		assert.Equal(t, tournament.SetScore{HomeScore: 4, AwayScore: 6}, stored.Score.Sets[0])
		assert.Equal(t, tournament.SetScore{HomeScore: 3, AwayScore: 6}, stored.Score.Sets[1])
	})

	t.Run("unknown match", func(t *testing.T) {
		assert.Error(t, st.RecordScore(trn.ID, "no-such-match", "6-4", ""))
	})

	assert.Equal(t, 2, mock.ScoresRecorded())
}

func TestResetKeepsIdentity(t *testing.T) {
	st, _, _, teardown := setupTestStore(t)
	defer teardown()

	trn := startedTournament(t, st, "Alpha", "Beta")
	require.NoError(t, st.Reset(trn.ID))

	got, err := st.Get(trn.ID)
	require.NoError(t, err)
	assert.Equal(t, trn.ID, got.ID)
	assert.Equal(t, trn.Name, got.Name)
	assert.Empty(t, got.Teams)
	assert.Empty(t, got.Matches)
	assert.Equal(t, tournament.StatusPending, got.Status)
}

func TestImportResults(t *testing.T) {
	st, _, mock, teardown := setupTestStore(t)
	defer teardown()

	trn := startedTournament(t, st, "Ivanov Petrov", "Sidorov Kozlov")

	results, err := st.ImportResults(trn.ID, []reconcile.Candidate{
		{Team1Name: "Ivanov / Petrov", Team2Name: "Sidorov / Kozlov", ScoreText: "6-4, 6-3"},
		{Team1Name: "Totally Different Name", Team2Name: "Sidorov Kozlov", ScoreText: "6-2, 6-2"},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, reconcile.StatusApplied, results[0].Status)
	assert.Equal(t, reconcile.StatusTeamUnresolved, results[1].Status)

	got, err := st.Get(trn.ID)
	require.NoError(t, err)
	assert.True(t, got.Matches[0].IsCompleted)
	assert.Equal(t, 1, mock.ImportRuns())
	assert.Equal(t, 1, mock.CandidatesApplied())
}

func TestSnapshotSurvivesReload(t *testing.T) {
	st, db, _, teardown := setupTestStore(t)
	defer teardown()

	trn := startedTournament(t, st, "Alpha", "Beta")
	require.NoError(t, st.RecordScore(trn.ID, trn.Matches[0].ID, "6-4, 6-3", ""))

	// A fresh store over the same database must see the persisted snapshot.
	reloaded, err := store.New(db, metrics.NewMock())
	require.NoError(t, err)

	got, err := reloaded.Get(trn.ID)
	require.NoError(t, err)
	assert.Equal(t, trn.Name, got.Name)
	require.Len(t, got.Matches, 1)
	assert.True(t, got.Matches[0].IsCompleted)
	assert.Equal(t, 6, got.Matches[0].Score.Sets[0].HomeScore)
}

func TestReplaceAll(t *testing.T) {
	st, _, _, teardown := setupTestStore(t)
	defer teardown()

	_, err := st.Create("Old Cup")
	require.NoError(t, err)

	restored := tournament.New("Restored Cup")
	require.NoError(t, st.ReplaceAll([]tournament.Tournament{restored}))

	list := st.List()
	require.Len(t, list, 1)
	assert.Equal(t, "Restored Cup", list[0].Name)
}

func TestListReturnsCopies(t *testing.T) {
	st, _, _, teardown := setupTestStore(t)
	defer teardown()

	trn := startedTournament(t, st, "Alpha", "Beta")

	list := st.List()
	list[0].Name = "tampered"
	list[0].Teams[0].Name = "tampered"

	got, err := st.Get(trn.ID)
	require.NoError(t, err)
	assert.Equal(t, trn.Name, got.Name)
	assert.Equal(t, "Alpha", got.Teams[0].Name)
}
