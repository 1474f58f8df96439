package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaya9689/examtrainer/internal/app"
	"github.com/yaya9689/examtrainer/internal/bank"
	"github.com/yaya9689/examtrainer/internal/progress"
)

// runApp wires the loader, the progress store, and the TUI together and
// blocks until the program exits. sampleSize <= 0 plays the full bank.
func runApp(cmd *cobra.Command, sampleSize int) error {
	loader := bank.NewLoader(resolveDataDir(cmd))

	bankSize := 0
	if qs, err := loader.FetchAll(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "question banks:", err)
	} else {
		bankSize = len(qs)
	}

	kv, closeKV := openKV(cmd)
	defer closeKV()

	store := progress.NewStore(kv, progress.DefaultStorageKey, bankSize)

	return app.Run(app.Options{
		Store:      store,
		Source:     loader,
		SampleSize: sampleSize,
	})
}
