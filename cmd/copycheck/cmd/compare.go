package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/emilminas/copycheck/internal/adapters/ahocorasick"
	"github.com/emilminas/copycheck/internal/app"
	"github.com/emilminas/copycheck/internal/config"
	"github.com/emilminas/copycheck/internal/ports"
)

var (
	compareRefFile    string
	compareRefName    string
	compareSampleFile string
	compareFrame      int
	compareNoQuotes   bool
	compareScheme     string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare a sample text against a reference text",
	Long: "Highlights every run of at least the frame size of identical words.\n" +
		"Texts not supplied via flags are read from stdin until EOF (Ctrl-D).",
	Args: cobra.NoArgs,
	RunE: runCompare,
}

func init() {
	f := compareCmd.Flags()
	f.StringVarP(&compareRefFile, "ref", "r", "", "Reference text file")
	f.StringVar(&compareRefName, "ref-name", "", "Stored reference name (see 'copycheck refs')")
	f.StringVarP(&compareSampleFile, "sample", "s", "", "Sample text file")
	f.IntVarP(&compareFrame, "frame", "f", 0, "Minimum matching run length (default from config, 11)")
	f.BoolVar(&compareNoQuotes, "no-quotes", false, "Do not highlight quoted matches separately")
	f.StringVar(&compareScheme, "scheme", "", "Color scheme: cmyk or rbg (default from config)")
	compareCmd.MarkFlagsMutuallyExclusive("ref", "ref-name")
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := compareConfig()
	if err != nil {
		return err
	}

	reference, err := referenceText(compareRefFile, compareRefName)
	if err != nil {
		return err
	}
	sample, err := textFromFileOrStdin(compareSampleFile, "sample")
	if err != nil {
		return err
	}

	sc := resolveScheme(cfg.Scheme)
	session := &app.Session{
		Reference: reference,
		Sample:    sample,
		Config:    cfg,
		Scanner:   phraseScanner(cfg),
		Marks:     sc.marks(),
	}

	res, err := session.Run()
	if err != nil {
		return err
	}
	if res == nil {
		fmt.Print(formatNoMatch(reference, sample))
		return nil
	}
	fmt.Print(formatComparison(res, sc, cfg.DetectQuotes))
	return nil
}

// compareConfig loads the config file and applies flag overrides.
func compareConfig() (*config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if compareFrame > 0 {
		cfg.FrameSize = compareFrame
	}
	if compareNoQuotes {
		cfg.DetectQuotes = false
	}
	if compareScheme != "" {
		cfg.Scheme = compareScheme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// phraseScanner builds the ignore-phrase scanner, or nil when none are
// configured.
func phraseScanner(cfg *config.Config) ports.PhraseScanner {
	if len(cfg.IgnorePhrases) == 0 {
		return nil
	}
	return ahocorasick.NewScanner(cfg.IgnorePhrases)
}

// referenceText resolves the reference from a file, the store, or stdin.
func referenceText(file, name string) (string, error) {
	if name != "" {
		store, err := openStore()
		if err != nil {
			return "", err
		}
		defer store.Close()

		ref, err := store.LoadReference(name)
		if err != nil {
			return "", err
		}
		if ref == nil {
			return "", fmt.Errorf("no stored reference named %q", name)
		}
		return ref.Text, nil
	}
	return textFromFileOrStdin(file, "reference")
}

// textFromFileOrStdin reads path when given, otherwise prompts and reads
// stdin until EOF.
func textFromFileOrStdin(path, label string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", label, err)
		}
		return string(data), nil
	}

	fmt.Fprintf(os.Stderr, "*** Enter the %s text. Ctrl-D to save it. ***\n", label)
	data, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return "", fmt.Errorf("read %s from stdin: %w", label, err)
	}
	return string(data), nil
}
