package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lineq/document"
)

func newSolveCmd(o *rootOptions) *cobra.Command {
	var (
		ov   overrides
		dump bool
	)
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve the equations in FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.newApp(cmd, ov)
			if err != nil {
				return err
			}
			return a.solve(document.ResolvePath(args[0]), dump)
		},
	}
	cmd.Flags().StringVar(&ov.method, "method", "", "gauss, jacobi, gauss-seidel or sor")
	cmd.Flags().StringVar(&ov.format, "format", "", "output format: text or yaml")
	cmd.Flags().BoolVar(&dump, "dump", false, "print A and b before solving")

	return cmd
}
