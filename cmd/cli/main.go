// Package main is the entry point for the rsccard CLI binary.
package main

import (
	"os"

	_ "github.com/mattn/go-sqlite3"

	cli "rsccard/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
