package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lineq/document"
	"github.com/katalvlaran/lineq/report"
)

func newCheckCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Parse FILE and report its block structure without solving",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.newApp(cmd, overrides{})
			if err != nil {
				return err
			}
			path := document.ResolvePath(args[0])
			sys, err := a.load(path)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%d equations, %d variables\n", sys.Equations, sys.Vars.Len())
			if err = report.WriteBlocks(a.out, sys.Blocks(), sys.Vars, a.report); err != nil {
				return err
			}
			if err = sys.Validate(); err != nil {
				if werr := report.WriteParseError(a.out, path, err, a.report); werr != nil {
					return werr
				}
				return errReported
			}
			fmt.Fprintln(a.out, "OK")

			return nil
		},
	}
}
