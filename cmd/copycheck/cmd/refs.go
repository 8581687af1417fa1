package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/emilminas/copycheck/internal/ports"
)

var refsAddFile string

var refsCmd = &cobra.Command{
	Use:   "refs",
	Short: "Manage the stored reference library",
}

var refsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Save a reference text under a name",
	Args:  cobra.ExactArgs(1),
	RunE:  runRefsAdd,
}

var refsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored references",
	Args:  cobra.NoArgs,
	RunE:  runRefsList,
}

var refsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a stored reference text",
	Args:  cobra.ExactArgs(1),
	RunE:  runRefsShow,
}

var refsRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a stored reference",
	Args:  cobra.ExactArgs(1),
	RunE:  runRefsRm,
}

func init() {
	refsAddCmd.Flags().StringVarP(&refsAddFile, "file", "F", "", "Read the text from a file instead of stdin")

	refsCmd.AddCommand(refsAddCmd)
	refsCmd.AddCommand(refsListCmd)
	refsCmd.AddCommand(refsShowCmd)
	refsCmd.AddCommand(refsRmCmd)
}

func runRefsAdd(cmd *cobra.Command, args []string) error {
	name := args[0]
	text, err := textFromFileOrStdin(refsAddFile, "reference")
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("reference text is empty")
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ref := &ports.Reference{
		Name:    name,
		Text:    text,
		Words:   len(strings.Fields(text)),
		AddedAt: time.Now().Unix(),
	}
	if err := store.SaveReference(ref); err != nil {
		return err
	}
	fmt.Printf("saved %q (%d words)\n", name, ref.Words)
	return nil
}

func runRefsList(cmd *cobra.Command, args []string) error {
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
		fmt.Println("no stored references")
		return nil
	}
	for _, ref := range refs {
		added := time.Unix(ref.AddedAt, 0).Format("2006-01-02")
		fmt.Printf("%-20s %6d words  added %s\n", ref.Name, ref.Words, added)
	}
	return nil
}

func runRefsShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ref, err := store.LoadReference(args[0])
	if err != nil {
		return err
	}
	if ref == nil {
		return fmt.Errorf("no stored reference named %q", args[0])
	}
	fmt.Print(ref.Text)
	if !strings.HasSuffix(ref.Text, "\n") {
		fmt.Println()
	}
	return nil
}

func runRefsRm(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteReference(args[0]); err != nil {
		return err
	}
	fmt.Printf("removed %q\n", args[0])
	return nil
}
