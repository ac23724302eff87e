// Package main provides the entry point for the taskloot CLI.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/akyairhashvil/taskloot/internal/tui"
)

func main() {
	// log.Printf output would corrupt a running bubbletea screen, so debug
	// runs redirect it to a file.
	if os.Getenv("TASKLOOT_DEBUG") != "" {
		f, err := tea.LogToFile("taskloot-debug.log", "debug")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "taskloot",
	Short: "taskloot - randomized rewards for finished tasks",
	Long: `taskloot grants a randomized reward each time you complete a task.
Rewards live as Markdown list entries in your notes vault; a completion
rolls a weighted pick over them, can tick the task's checkbox, log the
reward to today's daily note, and records the grant in a local history.`,
	SilenceUsage: true,
}

var (
	vaultDir string
	dataDir  string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&vaultDir, "vault", ".", "Vault directory holding the Markdown notes")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Override the app data directory (settings and history)")

	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion()
	},
}

func printVersion() {
	fmt.Println("taskloot " + tui.VersionLabel())
}
