package main

import (
	"os"

	"github.com/hossein1376/mohr/cmd/mohr/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
