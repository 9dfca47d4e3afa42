package main

import (
	"os"

	"github.com/laptopfinder/backend/cmd/laptopctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
