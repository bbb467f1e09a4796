package cmd

import (
	"fmt"
	"os"

	mdwlog "github.com/msto63/mDW/foundation/core/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "goldenscript",
	Short: "Golden master testing with scripted commands",
	Long: `goldenscript works with golden master test scripts that interleave
commands with their expected output:

  set foo=1
  get foo
  ---
  foo = 1

Script output is normally generated by running the script against a
runner inside a Go test. This tool covers the runner-independent
parts: validating script syntax and normalizing command formatting.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			mdwlog.GetDefault().SetLevel(mdwlog.LevelDebug)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
