package main

import (
	"os"

	"github.com/katalvlaran/lineq/cmd/lineq/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
