package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaya9689/examtrainer/internal/progress"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all saved progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, err := cmd.Flags().GetBool("yes")
		if err != nil {
			return err
		}
		if !yes {
			fmt.Println("This erases all answers, mistakes, and statistics.")
			fmt.Println("Re-run with --yes to confirm.")
			return nil
		}

		kv, closeKV := openKV(cmd)
		defer closeKV()

		store := progress.NewStore(kv, progress.DefaultStorageKey, 0)
		store.Reset()
		fmt.Println("Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Confirm the reset without prompting")
}
