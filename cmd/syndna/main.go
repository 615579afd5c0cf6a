// Command syndna manages the synthetic-DNA spike-in pool catalog used for
// sequencing normalization.
package main

import (
	"os"

	"github.com/AmandaBirmingham/syndna/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
