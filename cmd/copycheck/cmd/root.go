package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/emilminas/copycheck/internal/adapters/bbolt"
	"github.com/emilminas/copycheck/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "copycheck",
	Short: "copycheck — verbatim overlap review for two texts",
	Long: "Detects identical word sequences between a reference and a sample text\n" +
		"and highlights them, separating quoted (attributed) copying from unquoted.",
	SilenceUsage: true,
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: .copycheck.yaml in cwd or $HOME)")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(refsCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig loads the effective configuration once at the boundary.
func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

// storePath returns the reference library location, creating its
// directory if needed.
func storePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".copycheck")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	return filepath.Join(dir, "refs.db"), nil
}

// openStore opens the reference library.
func openStore() (*bbolt.Store, error) {
	path, err := storePath()
	if err != nil {
		return nil, err
	}
	return bbolt.NewStore(path)
}
