// copycheck highlights verbatim overlap between a reference text and a
// sample text for manual plagiarism and citation review.
package main

import (
	"fmt"
	"os"

	"github.com/emilminas/copycheck/cmd/copycheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
