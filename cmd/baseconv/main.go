package main

import (
	"os"

	"github.com/capitalone/baseconv/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
