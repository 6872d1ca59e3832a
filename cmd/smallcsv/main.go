package main

import (
	"os"

	"github.com/oleg578/smallcsv/cmd/smallcsv/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.LogError(err)
		os.Exit(1)
	}
}
