package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/emilminas/copycheck/internal/adapters/fsnotify"
	"github.com/emilminas/copycheck/internal/app"
)

var (
	watchRefFile    string
	watchRefName    string
	watchSampleFile string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run a comparison whenever the sample file changes",
	Long: "Watches the sample file and reprints the comparison after every save,\n" +
		"for live review while editing. Ctrl-C to stop.",
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	f := watchCmd.Flags()
	f.StringVarP(&watchRefFile, "ref", "r", "", "Reference text file")
	f.StringVar(&watchRefName, "ref-name", "", "Stored reference name")
	f.StringVarP(&watchSampleFile, "sample", "s", "", "Sample text file to watch (required)")
	f.IntVarP(&compareFrame, "frame", "f", 0, "Minimum matching run length (default from config, 11)")
	watchCmd.MarkFlagRequired("sample")
	watchCmd.MarkFlagsMutuallyExclusive("ref", "ref-name")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := compareConfig()
	if err != nil {
		return err
	}

	reference, err := referenceText(watchRefFile, watchRefName)
	if err != nil {
		return err
	}

	sc := resolveScheme(cfg.Scheme)
	rerun := func() {
		sample, err := os.ReadFile(watchSampleFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: read sample: %v\n", err)
			return
		}
		session := &app.Session{
			Reference: reference,
			Sample:    string(sample),
			Config:    cfg,
			Scanner:   phraseScanner(cfg),
			Marks:     sc.marks(),
		}
		res, err := session.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return
		}
		if res == nil {
			fmt.Print(formatNoMatch(reference, string(sample)))
			return
		}
		fmt.Print(formatComparison(res, sc, cfg.DetectQuotes))
	}

	rerun()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Stop()

	if err := watcher.Watch(watchSampleFile, rerun); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "watching %s (Ctrl-C to stop)\n", watchSampleFile)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}
