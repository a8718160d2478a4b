package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ivanz/interq/internal/config"
	"github.com/ivanz/interq/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "interq",
	Short: "Terminal interview trainer",
	Long:  "Interq — practice technical interview questions from your terminal, with spoken questions and per-profile progress tracking.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides INTERQ_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Path to the question bank CSV (overrides INTERQ_BANK env var)")

	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then INTERQ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveBankPath returns the question bank path using --bank flag, then
// the loaded configuration (INTERQ_BANK or the default).
func resolveBankPath(cmd *cobra.Command, cfg config.Config) string {
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		return p
	}
	return cfg.BankPath
}
