// Package cmd implements Veer's command-line driver: the out-of-scope
// "external collaborator" described by spec.md §1 — it reads a single
// source file path, hands the text to the interpreter core, and prints
// the final error, if any. Structured on the teacher's cmd/dwscript/cmd
// package (Cobra root + one subcommand).
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags; it has no bearing on Mewar
	// programs themselves, only on the `veer` binary.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "veer [file]",
	Short: "Veer — the Mewar scripting language interpreter",
	Long: `Veer runs Mewar programs: a small imperative scripting language
with English-like keywords (say, set, if/else, while, for each, repeat,
function/call/return).

Usage:
  veer path/to/program.mewar`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runScript,
}

// Execute runs the root command and reports whether it succeeded.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print the offending source line alongside a runtime error")
}
