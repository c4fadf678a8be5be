package main

import "github.com/spf13/cobra"

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "netview",
	Short: "Mutual k-nearest-neighbor population graphs over genome distance matrices",
	Long: `netview builds a mutual k-nearest-neighbor graph from a genome
distance matrix via a distance-of-distances abstraction, computes node
centrality, and optionally propagates sample labels across the graph.`,
	Version: version,
}

func init() {
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(propagateCmd)
}
