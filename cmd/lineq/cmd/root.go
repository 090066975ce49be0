package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errReported marks a failure that was already printed for the user.
var errReported = errors.New("lineq: reported")

// rootOptions holds the persistent flags.
type rootOptions struct {
	cfgFile string
	verbose bool
	quiet   bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   "lineq",
		Short: "Linear Equation Solver",
		Long: `lineq solves simultaneous linear equations stored in a file.

Each equation contains terms separated by '+', '-' or '='. A term is a
number, a variable, or a number followed by a variable. The optional
exponent of a number is preceded by '^'. Variable names use the letters
A-Z, a-z and '_'. Equations end at ';' or at a blank line and may span
several lines, but a term cannot be split between lines. Everything after
"//" on a line is a comment.

Example:

  6Alpha+11=67;               // the semicolon ends the first equation
  8 Beta + 23 = 4.5 - Alpha   // a blank line ends the second equation

  4.234^-05 + Gamma = 1000.0 Alpha + 2.0 Beta - 0.05

A file name without an extension gets ".txt" appended.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&o.cfgFile, "config", "", "config file (default: ./lineq.toml)")
	rootCmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().BoolVarP(&o.quiet, "quiet", "q", false, "suppress program and version information")

	rootCmd.AddCommand(newSolveCmd(o), newCheckCmd(o), newWatchCmd(o), newVersionCmd())

	return rootCmd
}

// Execute runs the command line and prints errors that were not reported
// by the command itself.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(err)
	}
	return err
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
