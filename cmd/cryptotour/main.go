package main

import (
	"os"

	"cryptotour/cmd/cryptotour/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
