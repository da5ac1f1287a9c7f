package main

import (
	"os"

	"github.com/wavrig/wavrig/cmd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
