package main

import (
	"os"

	"github.com/abhisek/traitsort/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
