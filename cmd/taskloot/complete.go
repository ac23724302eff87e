package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akyairhashvil/taskloot/internal/rewards"
	"github.com/akyairhashvil/taskloot/internal/tui"
	"github.com/akyairhashvil/taskloot/internal/util"
	"github.com/akyairhashvil/taskloot/internal/vault"
)

var (
	taskNote  string
	dailyNote string
	rollSeed  int64
)

var completeCmd = &cobra.Command{
	Use:   "complete [task]...",
	Short: "Complete a task and roll a reward",
	Long: `Roll a weighted pick over the rewards file and grant the result.
The task text is recorded with the grant; give --note to also tick the
task's checkbox in that note.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runComplete,
}

func init() {
	completeCmd.Flags().StringVar(&taskNote, "note", "", "Vault-relative note whose task checkbox gets ticked")
	completeCmd.Flags().StringVar(&dailyNote, "daily", "", "Override the daily note the saves go to")
	completeCmd.Flags().Int64Var(&rollSeed, "seed", 0, "Seed for the reward roll (0 uses the clock)")
}

func runComplete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	task := strings.Join(args, " ")

	_, s, err := openStore()
	if err != nil {
		return err
	}
	db, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	var picker *rewards.Picker
	if rollSeed != 0 {
		picker = rewards.NewPicker(rand.New(rand.NewSource(rollSeed)))
	}
	engine := rewards.NewEngine(s, vault.New(vaultDir), db, picker)

	out, err := engine.Complete(ctx, task, rewards.CompleteOptions{
		TaskNote:  util.NormalizePath(taskNote),
		DailyNote: util.NormalizePath(dailyNote),
	})
	if err != nil {
		return err
	}

	if s.ShowModal && term.IsTerminal(int(os.Stdout.Fd())) {
		m := tui.NewRewardModel(out, activeTheme(ctx, db))
		if _, err := tea.NewProgram(m).Run(); err != nil {
			return fmt.Errorf("reward modal: %w", err)
		}
		return nil
	}
	fmt.Println(tui.PlainOutcome(out))
	return nil
}
