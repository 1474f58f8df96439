package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaya9689/examtrainer/internal/progress"
)

var rootCmd = &cobra.Command{
	Use:   "examtrainer",
	Short: "Terminal exam trainer for multiple-choice question banks",
	Long: "Examtrainer — practice multiple-choice exams from local JSON question banks,\n" +
		"with progress, mistakes, and statistics persisted on this machine.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, 0)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "Directory with question bank JSON files (overrides EXAMTRAINER_DATA, default \"data\")")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EXAMTRAINER_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(mistakesCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(banksCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDataDir returns the bank directory using --data (highest priority),
// then EXAMTRAINER_DATA, then ./data.
func resolveDataDir(cmd *cobra.Command) string {
	if d, _ := cmd.Flags().GetString("data"); d != "" {
		return d
	}
	if d := os.Getenv("EXAMTRAINER_DATA"); d != "" {
		return d
	}
	return "data"
}

// resolveDBPath returns the database path using --db (highest priority),
// then EXAMTRAINER_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, progress.EnsureDir(p)
	}
	return progress.DefaultDBPath()
}

// openKV opens the durable backend. When the database cannot be opened it
// warns and returns a degraded backend that serves the session without
// persistence. The close func is always safe to call.
func openKV(cmd *cobra.Command) (progress.KV, func()) {
	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		var kv *progress.SQLiteKV
		kv, err = progress.OpenSQLite(dbPath)
		if err == nil {
			return kv, func() { kv.Close() }
		}
	}
	fmt.Fprintln(os.Stderr, "storage unavailable:", err)
	fmt.Fprintln(os.Stderr, "continuing without persistence — progress will not be saved")
	return progress.UnavailableKV{}, func() {}
}
