package main

import (
	"os"

	"github.com/execdat/execd/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
