// Command fdeb relaxes a weighted network into bundled edge curves and
// optionally exports the result as JSON.
package main

import (
	"os"

	"github.com/fdebgo/fdeb/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
