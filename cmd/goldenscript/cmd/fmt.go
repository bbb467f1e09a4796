package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/goldenscript/parser"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [script...]",
	Short: "Print scripts with normalized command formatting",
	Long: `Parses the given scripts and prints each command in canonical
form: single spaces, minimal quoting. Useful to see how the parser
reads a script. The scripts themselves are not modified.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			if err := formatScript(path); err != nil {
				printError(path, err)
				return fmt.Errorf("formatting failed")
			}
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func formatScript(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	blocks, err := parser.Parse(string(data))
	if err != nil {
		return err
	}

	for i, block := range blocks {
		if i > 0 {
			fmt.Println()
		}
		for _, command := range block.Commands {
			fmt.Println(command.String())
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(fmtCmd)
}
