//go:build !( js || wasm)

package main

import (
	"os"

	"github.com/latticejs/tyinfer/cmd"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "tyinfer [subcommand]",
	Short:        "tyinfer\n a conservative type-inference pass over a JS bytecode IR",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.InferCmd)
}
