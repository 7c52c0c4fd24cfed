package main

import (
	"os"
	_ "time/tzdata"

	"github.com/vcscsvcscs/guttracker/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
