package main

import (
	"os"

	"github.com/otelka/schedbot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
