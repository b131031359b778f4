// Pathq queries JSON, YAML, and TOML documents with path expressions.
package main

import (
	"os"

	"github.com/itchyny/pathq/cli"
)

func main() {
	os.Exit(cli.Run())
}
