package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akyairhashvil/taskloot/internal/config"
	"github.com/akyairhashvil/taskloot/internal/database"
	"github.com/akyairhashvil/taskloot/internal/tui"
)

var (
	exportJSON bool
	exportOut  string
	clearYes   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse granted rewards",
	Long:  "Interactive history browser on a terminal; a plain listing when piped.",
	RunE:  runHistory,
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the grant history to a report file",
	Long:  "Export the history as a PDF report, or as JSON with --json for backups.",
	RunE:  runHistoryExport,
}

var historyImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Restore the grant history from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryImport,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the entire grant history",
	RunE:  runHistoryClear,
}

func init() {
	historyExportCmd.Flags().BoolVar(&exportJSON, "json", false, "Export JSON instead of a PDF report")
	historyExportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default: a dated file in the reports dir)")
	historyClearCmd.Flags().BoolVar(&clearYes, "yes", false, "Confirm the deletion")
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyImportCmd)
	historyCmd.AddCommand(historyClearCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return printHistory(ctx, db, os.Stdout)
	}

	m := tui.NewHistoryModel(ctx, db)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("history browser: %w", err)
	}
	return nil
}

// printHistory writes a plain listing for pipes and scripts.
func printHistory(ctx context.Context, db *database.Database, w io.Writer) error {
	count, err := db.CountGrants(ctx)
	if err != nil {
		return err
	}
	grants, err := db.RecentGrants(ctx, config.MaxHistoryRows)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, tui.FormatGrantCount(count))
	now := time.Now()
	for _, g := range grants {
		line := fmt.Sprintf("%s  %s %s", tui.FormatGrantedAt(g.GrantedAt, now), tui.FormatTierTag(g.Tier, g.Chance), g.Reward)
		if g.Task != "" {
			line += fmt.Sprintf(" (for: %s)", g.Task)
		}
		fmt.Fprintln(w, line)
	}
	return nil
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if exportJSON {
		return exportHistoryJSON(ctx, db)
	}
	return exportHistoryPDF(ctx, db)
}

func exportHistoryJSON(ctx context.Context, db *database.Database) error {
	payload, err := db.ExportHistory(ctx)
	if err != nil {
		return err
	}
	out, err := exportPath("json")
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, payload, 0o644); err != nil {
		return fmt.Errorf("write export %s: %w", out, err)
	}
	fmt.Println("Wrote", out)
	return nil
}

func exportHistoryPDF(ctx context.Context, db *database.Database) error {
	count, err := db.CountGrants(ctx)
	if err != nil {
		return err
	}
	grants, err := db.RecentGrants(ctx, config.MaxHistoryRows)
	if err != nil {
		return err
	}
	top, err := db.TopRewards(ctx, 3)
	if err != nil {
		return err
	}
	out, err := exportPath("pdf")
	if err != nil {
		return err
	}
	if err := tui.WriteHistoryPDF(out, grants, top, count); err != nil {
		return fmt.Errorf("write report %s: %w", out, err)
	}
	fmt.Println("Wrote", out)
	return nil
}

func exportPath(ext string) (string, error) {
	if exportOut != "" {
		return exportOut, nil
	}
	dir, err := reportsDir()
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("history_%s.%s", time.Now().Format(config.DailyNoteLayout), ext)
	return filepath.Join(dir, name), nil
}

func runHistoryImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	payload, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	db, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.ImportHistory(ctx, payload); err != nil {
		return err
	}
	count, err := db.CountGrants(ctx)
	if err != nil {
		return err
	}
	fmt.Println("History restored:", tui.FormatGrantCount(count))
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	if !clearYes {
		return errors.New("refusing to delete the history without --yes")
	}

	ctx := cmd.Context()
	db, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.ClearGrants(ctx); err != nil {
		return err
	}
	fmt.Println("History cleared.")
	return nil
}
