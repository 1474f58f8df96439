package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz session",
	Long:  "Start a quiz session over the loaded question banks.\nUse --sample to practice a random subset instead of the full bank.",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := cmd.Flags().GetInt("sample")
		if err != nil {
			return err
		}
		return runApp(cmd, n)
	},
}

func init() {
	playCmd.Flags().IntP("sample", "n", 0, "Sample N random questions (0 = full bank)")
}
