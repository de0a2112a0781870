// main is the entry point for the creditlens CLI.
package main

import (
	"fmt"
	"os"

	"github.com/creditlens/creditlens/cmd"
	"github.com/creditlens/creditlens/internal/runstore"
)

func main() {
	err := cmd.Execute()

	// Close database connections regardless of how the command exited.
	runstore.CloseStores()

	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
