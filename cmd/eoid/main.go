package main

import (
	"os"

	"github.com/earthobs/eoid/cmd/eoid/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
