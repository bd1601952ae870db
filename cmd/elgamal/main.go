package main

import (
	"os"

	"github.com/fatih/color"

	"elgamal64/cmd/elgamal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
