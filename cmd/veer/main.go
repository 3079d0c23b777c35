// Command veer runs Mewar programs from the command line.
package main

import (
	"os"

	"github.com/veerlang/veer/cmd/veer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
