// Command netview builds mutual k-nearest-neighbor population graphs
// from genome distance matrices and runs centrality-aware label
// propagation over them, mirroring original_source/src/main.rs's
// clap-driven entry point with cobra.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
