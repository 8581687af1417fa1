package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path, err := storePath()
	if err != nil {
		return err
	}

	fmt.Printf("frame size:     %d\n", cfg.FrameSize)
	fmt.Printf("detect quotes:  %t\n", cfg.DetectQuotes)
	fmt.Printf("scheme:         %s\n", cfg.Scheme)
	fmt.Printf("ignore phrases: %d\n", len(cfg.IgnorePhrases))
	for _, p := range cfg.IgnorePhrases {
		fmt.Printf("  - %s\n", p)
	}
	fmt.Printf("reference store: %s\n", path)
	return nil
}
