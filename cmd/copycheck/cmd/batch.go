package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emilminas/copycheck/internal/app"
)

var batchSampleFile string

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Compare a sample against every stored reference",
	Long: "Runs one comparison per stored reference concurrently and prints a\n" +
		"summary line per reference, with full output for those that matched.",
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchSampleFile, "sample", "s", "", "Sample text file (default: stdin)")
	batchCmd.Flags().IntVarP(&compareFrame, "frame", "f", 0, "Minimum matching run length (default from config, 11)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := compareConfig()
	if err != nil {
		return err
	}

	sample, err := textFromFileOrStdin(batchSampleFile, "sample")
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	refs, err := store.ListReferences()
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		return fmt.Errorf("no stored references; add some with 'copycheck refs add'")
	}

	sc := resolveScheme(cfg.Scheme)
	session := &app.Session{
		Sample:  sample,
		Config:  cfg,
		Scanner: phraseScanner(cfg),
		Marks:   sc.marks(),
	}

	items, err := session.Batch(context.Background(), refs)
	if err != nil {
		return err
	}

	for _, item := range items {
		if item.Result == nil {
			fmt.Printf("%-20s no overlap\n", item.Name)
			continue
		}
		fmt.Printf("%-20s %d matching words (%d quoted)\n",
			item.Name, item.Result.MatchedWords, item.Result.QuotedWords)
	}
	for _, item := range items {
		if item.Result == nil {
			continue
		}
		fmt.Printf("\n=== %s ===\n\n", item.Name)
		fmt.Print(formatComparison(item.Result, sc, cfg.DetectQuotes))
	}
	return nil
}
