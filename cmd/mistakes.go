package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaya9689/examtrainer/internal/bank"
	"github.com/yaya9689/examtrainer/internal/explain"
	"github.com/yaya9689/examtrainer/internal/progress"
)

var mistakesCmd = &cobra.Command{
	Use:   "mistakes",
	Short: "List questions you last answered incorrectly",
	Long: "List every question whose most recent answer was wrong.\n" +
		"With --explain, ask the configured LLM for a short explanation of each one\n" +
		"(requires EXAMTRAINER_OPENAI_API_KEY or OPENAI_API_KEY).",
	RunE: func(cmd *cobra.Command, args []string) error {
		withExplain, err := cmd.Flags().GetBool("explain")
		if err != nil {
			return err
		}

		loader := bank.NewLoader(resolveDataDir(cmd))
		qs, err := loader.FetchAll(cmd.Context())
		if err != nil {
			return fmt.Errorf("loading question banks: %w", err)
		}
		byID := make(map[bank.QuestionID]bank.Question, len(qs))
		for _, q := range qs {
			byID[q.ID] = q
		}

		kv, closeKV := openKV(cmd)
		defer closeKV()
		store := progress.NewStore(kv, progress.DefaultStorageKey, len(qs))

		ids := store.MistakeIDs()
		if len(ids) == 0 {
			fmt.Println("No mistakes to review — well done!")
			return nil
		}

		var svc *explain.Service
		if withExplain {
			cfg := explain.ConfigFromEnv()
			if !cfg.Enabled() {
				fmt.Fprintln(os.Stderr, "no API key configured, skipping explanations")
			} else {
				provider, err := explain.NewOpenAIProvider(cfg)
				if err != nil {
					return err
				}
				svc = explain.NewService(provider, cfg)
			}
		}

		for _, id := range ids {
			q, ok := byID[id]
			if !ok {
				// Recorded against a bank file that no longer exists.
				continue
			}
			selected, _ := store.SelectedAnswer(id)

			fmt.Printf("[%s] %s\n", id, q.Question)
			for _, key := range q.OptionKeys() {
				marker := " "
				switch key {
				case q.CorrectAnswer:
					marker = "✓"
				case selected:
					marker = "✗"
				}
				fmt.Printf("  %s %s) %s\n", marker, key, q.Options[key])
			}

			if svc != nil {
				text, err := svc.Mistake(cmd.Context(), q, selected)
				if err != nil {
					fmt.Fprintf(os.Stderr, "explanation for %s failed: %v\n", id, err)
				} else {
					fmt.Printf("\n  %s\n", text)
				}
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	mistakesCmd.Flags().Bool("explain", false, "Generate an LLM explanation for each mistake")
}
