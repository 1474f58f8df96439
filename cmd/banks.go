package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaya9689/examtrainer/internal/bank"
)

var banksCmd = &cobra.Command{
	Use:   "banks",
	Short: "List question bank files and their status",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := resolveDataDir(cmd)
		loader := bank.NewLoader(dir)

		files, err := loader.Files()
		if err != nil {
			return fmt.Errorf("reading %s: %w", dir, err)
		}
		if len(files) == 0 {
			fmt.Printf("No question bank files in %s\n", dir)
			return nil
		}

		total := 0
		for _, f := range files {
			qs, err := bank.LoadFile(f)
			if err != nil {
				fmt.Printf("  %-30s invalid: %v\n", filepath.Base(f), err)
				continue
			}
			fmt.Printf("  %-30s %d questions\n", filepath.Base(f), len(qs))
			total += len(qs)
		}
		fmt.Printf("\n%d questions across %d files\n", total, len(files))
		return nil
	},
}
