package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/goldenscript/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check [script...]",
	Short: "Validate goldenscript syntax",
	Long: `Parses the given scripts and reports syntax errors with line,
column, and a source snippet. Output sections are not verified; that
requires the runner and happens in the tests that own the scripts.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			if err := checkScript(path); err != nil {
				printError(path, err)
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d script(s) invalid", failed, len(args))
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func checkScript(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	blocks, err := parser.Parse(string(data))
	if err != nil {
		return err
	}

	commands := 0
	for _, block := range blocks {
		commands += len(block.Commands)
	}
	fmt.Printf("%s: %d block(s), %d command(s)\n", path, len(blocks), commands)
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
