package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/B21v/sports-tournament-manager/internal/config"
	"github.com/B21v/sports-tournament-manager/internal/database"
	"github.com/B21v/sports-tournament-manager/internal/htmlimport"
	"github.com/B21v/sports-tournament-manager/internal/metrics"
	"github.com/B21v/sports-tournament-manager/internal/ocr"
	"github.com/B21v/sports-tournament-manager/internal/render"
	"github.com/B21v/sports-tournament-manager/internal/store"
	"github.com/B21v/sports-tournament-manager/internal/tournament"
)

var scoreAsTeamID string

func init() {
	scoreCmd.Flags().StringVar(&scoreAsTeamID, "as", "", "Team ID whose perspective the score text is written from")

	rootCmd.AddCommand(
		listCmd,
		createCmd,
		renameCmd,
		deleteCmd,
		teamsCmd,
		addTeamCmd,
		removeTeamCmd,
		startCmd,
		matchesCmd,
		scoreCmd,
		tableCmd,
		resetCmd,
		importHTMLCmd,
		importRosterCmd,
		exportCmd,
		restoreCmd,
	)
}

// openStore wires config, database and metrics and loads the snapshot.
func openStore() (store.TournamentStore, func(), error) {
	cfg := config.Load()
	db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	st, err := store.New(db, metrics.NewService())
	if err != nil {
		teardown()
		return nil, nil, err
	}
	return st, teardown, nil
}

// confirm gates destructive commands. The store mutates unconditionally once
// invoked, so the prompt has to happen here.
func confirm(prompt string) bool {
	if assumeYes {
		return true
	}
	fmt.Printf("%s [y/N]: ", prompt)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}

func readInput(args []string, argIndex int) (string, error) {
	if len(args) > argIndex {
		data, err := os.ReadFile(args[argIndex])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[argIndex], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tournaments",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, teardown, err := openStore()
		if err != nil {
			return err
		}
		defer teardown()

		for _, t := range st.List() {
			fmt.Printf("%s  %-30s %s (%d teams, %d matches)\n", t.ID, t.Name, t.Status, len(t.Teams), len(t.Matches))
		}
		return nil
	},
}

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new tournament",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, teardown, err := openStore()
		if err != nil {
			return err
		}
		defer teardown()

		t, err := st.Create(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Created tournament %s (%s)\n", t.Name, t.ID)
		return nil
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <tournament-id> <name>",
	Short: "Rename a tournament",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, teardown, err := openStore()
		if err != nil {
			return err
		}
		defer teardown()
		return st.Rename(args[0], args[1])
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <tournament-id>",
	Short: "Delete a tournament",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm("Delete the tournament and all its data?") {
			return nil
		}
		st, teardown, err := openStore()
		if err != nil {
			return err
		}
		defer teardown()
		return st.Delete(args[0])
	},
}

var teamsCmd = &cobra.Command{
	Use:   "teams <tournament-id>",
	Short: "List the teams of a tournament",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, teardown, err := openStore()
		if err != nil {
			return err
		}
		defer teardown()

		t, err := st.Get(args[0])
		if err != nil {
			return err
		}
		for _, team := range t.Teams {
			fmt.Printf("%s  %s\n", team.ID, team.Name)
		}
		return nil
	},
}

var addTeamCmd = &cobra.Command{
	Use:   "add-team <tournament-id> <name>",
	Short: "Register a team",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, teardown, err := openStore()
		if err != nil {
			return err
		}
		defer teardown()

		team, err := st.AddTeam(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("Added team %s (%s)\n", team.Name, team.ID)
		return nil
	},
}

var removeTeamCmd = &cobra.Command{
	Use:   "remove-team <tournament-id> <team-id>",
	Short: "Remove a team and all its matches",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm("Removing a team also removes all its matches. Continue?") {
			return nil
		}
		st, teardown, err := openStore()
		if err != nil {
			return err
		}
		defer teardown()
		return st.RemoveTeam(args[0], args[1])
	},
}

var startCmd = &cobra.Command{
	Use:   "start <tournament-id>",
	Short: "Generate the round-robin fixtures and start the tournament",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, teardown, err := openStore()
		if err != nil {
			return err
		}
		defer teardown()
		return st.Start(args[0])
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches <tournament-id>",
	Short: "List the fixtures of a tournament",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, teardown, err := openStore()
		if err != nil {
			return err
		}
		defer teardown()

		t, err := st.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Print(render.Matches(t))
		return nil
	},
}

var scoreCmd = &cobra.Command{
	Use:   "score <tournament-id> <match-id> <score>",
	Short: "Record a match score, e.g. \"6-4, 6-3\"",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, teardown, err := openStore()
		if err != nil {
			return err
		}
		defer teardown()
		return st.RecordScore(args[0], args[1], args[2], scoreAsTeamID)
	},
}

var tableCmd = &cobra.Command{
	Use:   "table <tournament-id>",
	Short: "Show the standings table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, teardown, err := openStore()
		if err != nil {
			return err
		}
		defer teardown()

		t, err := st.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Print(render.Table(t))
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset <tournament-id>",
	Short: "Reset a tournament, discarding all teams and matches",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm("Reset the tournament? All teams and matches will be deleted.") {
			return nil
		}
		st, teardown, err := openStore()
		if err != nil {
			return err
		}
		defer teardown()
		return st.Reset(args[0])
	},
}

var importHTMLCmd = &cobra.Command{
	Use:   "import-html <tournament-id> [file]",
	Short: "Import match results from an HTML fragment (file or stdin)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		html, err := readInput(args, 1)
		if err != nil {
			return err
		}
		candidates, err := htmlimport.ParseResults(html)
		if err != nil {
			return err
		}
		if len(candidates) == 0 {
			log.Warn("No match containers found in the HTML")
			return nil
		}

		st, teardown, err := openStore()
		if err != nil {
			return err
		}
		defer teardown()

		results, err := st.ImportResults(args[0], candidates)
		if err != nil {
			return err
		}
		for _, r := range results {
			fmt.Printf("%-16s %s vs %s (%s)\n", r.Status, r.Candidate.Team1Name, r.Candidate.Team2Name, r.Candidate.ScoreText)
		}
		return nil
	},
}

var importRosterCmd = &cobra.Command{
	Use:   "import-roster <tournament-id> [file]",
	Short: "Register teams from recognized image text (file or stdin)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args, 1)
		if err != nil {
			return err
		}
		pairs := ocr.ExtractPairs(text)
		if len(pairs) == 0 {
			log.Warn("No team pairs found in the recognized text")
			return nil
		}

		st, teardown, err := openStore()
		if err != nil {
			return err
		}
		defer teardown()

		for _, pair := range pairs {
			team, err := st.AddTeam(args[0], pair)
			if err != nil {
				return err
			}
			fmt.Printf("Added team %s (%s)\n", team.Name, team.ID)
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write a backup of all tournaments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, teardown, err := openStore()
		if err != nil {
			return err
		}
		defer teardown()

		data, err := msgpack.Marshal(st.List())
		if err != nil {
			return fmt.Errorf("failed to encode backup: %w", err)
		}
		if err := os.WriteFile(args[0], data, 0o644); err != nil {
			return fmt.Errorf("failed to write backup: %w", err)
		}
		log.Info("Backup written", "file", args[0])
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Replace all tournaments from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm("Restoring replaces the entire tournament list. Continue?") {
			return nil
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read backup: %w", err)
		}
		var tournaments []tournament.Tournament
		if err := msgpack.Unmarshal(data, &tournaments); err != nil {
			return fmt.Errorf("failed to decode backup: %w", err)
		}

		st, teardown, err := openStore()
		if err != nil {
			return err
		}
		defer teardown()
		if err := st.ReplaceAll(tournaments); err != nil {
			return err
		}
		log.Info("Backup restored", "tournaments", len(tournaments))
		return nil
	},
}
