package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaya9689/examtrainer/internal/bank"
	"github.com/yaya9689/examtrainer/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print progress statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		bankSize := countBank(cmd)

		kv, closeKV := openKV(cmd)
		defer closeKV()

		store := progress.NewStore(kv, progress.DefaultStorageKey, bankSize)
		st := store.Statistics()

		fmt.Printf("Bank size:     %d\n", st.TotalBankSize)
		fmt.Printf("Answered:      %d\n", st.CompletedCount)
		fmt.Printf("Correct:       %d\n", st.CorrectCount)
		fmt.Printf("Incorrect:     %d\n", st.IncorrectCount)
		fmt.Printf("Accuracy:      %d%%\n", st.AccuracyPercent)
		fmt.Printf("Open mistakes: %d\n", len(store.MistakeIDs()))
		return nil
	},
}

// countBank loads the banks once to size the statistics; failures are
// already warned about by the loader and count as an empty bank.
func countBank(cmd *cobra.Command) int {
	loader := bank.NewLoader(resolveDataDir(cmd))
	qs, err := loader.FetchAll(cmd.Context())
	if err != nil {
		return 0
	}
	return len(qs)
}
