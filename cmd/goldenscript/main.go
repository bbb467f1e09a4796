package main

import (
	"os"

	"github.com/msto63/goldenscript/cmd/goldenscript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
