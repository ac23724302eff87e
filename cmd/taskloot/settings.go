package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/akyairhashvil/taskloot/internal/tui"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Open the interactive settings form",
	Long:  "Edit reward markup, occurrence tiers, daily-note saving and display options. Every accepted change is saved immediately.",
	RunE:  runSettings,
}

func runSettings(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	st, s, err := openStore()
	if err != nil {
		return err
	}
	db, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	m := tui.NewSettingsModel(st, s, activeTheme(ctx, db))
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("settings form: %w", err)
	}
	return nil
}
