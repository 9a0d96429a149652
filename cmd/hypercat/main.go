package main

import (
	"os"

	"github.com/katalvlaran/hypercat/cmd/hypercat/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(commands.ExitCode(err))
	}
}
