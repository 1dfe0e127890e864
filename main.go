// configreader reads, edits and converts INI configuration files.
package main

import (
	"fmt"
	"os"

	"configreader/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
