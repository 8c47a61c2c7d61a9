package main

import (
	"os"

	"github.com/takumx/zenbridge/cmd/zenbridge/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
