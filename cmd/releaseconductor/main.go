package main

import (
	"os"

	"github.com/grokify/releaseconductor/cmd/releaseconductor/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
