package main

import (
	"os"

	"github.com/msto63/span/cmd/span/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
