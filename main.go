package main

import (
	"os"

	"github.com/thenoetrevino/phonebook/cmd"
	"github.com/thenoetrevino/phonebook/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cli.ExitCodeFor(err))
	}
}
