package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/veerlang/veer/internal/veererr"
	"github.com/veerlang/veer/pkg/veer"
)

// runCmd is an explicit alias for the root command's bare-argument form
// (`veer path/to/program.mewar` and `veer run path/to/program.mewar`
// behave identically), grounded on the teacher's root+run subcommand
// split in cmd/dwscript/cmd.
var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Mewar program",
	Args:  cobra.ExactArgs(1),
	RunE:  runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runScript is Veer's entire driver loop: read the one file argument,
// run it, report the result (§6). Runtime errors have no separate error
// channel in this design — they print to standard output alongside any
// `say` output the program already produced, per §6 and §7's driver
// fallback message for anything outside the closed error taxonomy.
func runScript(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &veererr.UsageError{Message: "usage: veer path/to/program.mewar"}
	}
	filename := args[0]

	content, err := os.ReadFile(filename)
	if err != nil {
		exitWithError(fmt.Sprintf("Veer Runtime Error: cannot read %s: %v", filename, err))
	}

	interp := veer.New(os.Stdout, bufio.NewReader(os.Stdin))
	runErr := interp.Run(string(content))
	if runErr == nil {
		return nil
	}

	var rtErr *veererr.RuntimeError
	switch {
	case errors.As(runErr, &rtErr) && verbose:
		exitWithError(rtErr.Verbose())
	case errors.As(runErr, &rtErr):
		exitWithError(rtErr.Error())
	default:
		exitWithError(fmt.Sprintf("An unexpected error occurred: %s", runErr.Error()))
	}
	return nil
}

// exitWithError prints msg to standard output, per §6, and exits
// non-zero (§6's "non-zero on any runtime error" contract).
func exitWithError(msg string) {
	fmt.Fprintln(os.Stdout, msg)
	os.Exit(1)
}
