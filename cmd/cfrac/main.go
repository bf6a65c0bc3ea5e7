// Command cfrac builds, inspects and stores continued fractions.
package main

import (
	"os"

	"github.com/katalvlaran/contfrac/cmd/cfrac/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
