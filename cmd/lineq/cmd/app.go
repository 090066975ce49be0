package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lineq/config"
	"github.com/katalvlaran/lineq/document"
	"github.com/katalvlaran/lineq/internal/logging"
	"github.com/katalvlaran/lineq/report"
)

// defaultConfigFile is read when --config is not given; it may be absent.
const defaultConfigFile = "lineq.toml"

// app is the per-invocation state shared by the subcommands.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
	report report.Options
}

// overrides are subcommand flags that win over the config file.
type overrides struct {
	method string
	format string
}

func (o *rootOptions) newApp(cmd *cobra.Command, ov overrides) (*app, error) {
	path := o.cfgFile
	if path == "" {
		path = defaultConfigFile
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if ov.method != "" {
		cfg.Solver.Method = ov.method
	}
	if ov.format != "" {
		cfg.Output.Format = ov.format
	}
	if o.verbose {
		cfg.Log.Level = "debug"
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	out := cmd.OutOrStdout()
	a := &app{
		cfg: cfg,
		logger: logging.NewLogger(logging.LoggerConfig{
			Level:  cfg.Log.Level,
			Format: cfg.Log.Format,
			Output: cmd.ErrOrStderr(),
		}),
		out: out,
		report: report.Options{
			Format:    cfg.Output.Format,
			Precision: cfg.Output.Precision,
			Color:     cfg.Output.Color && isTerminal(out),
		},
	}
	if !o.quiet {
		a.banner()
	}

	return a, nil
}

func (a *app) banner() {
	fmt.Fprintf(a.out, "Linear Equation Solver - Version %s\n", Version)
}

// load parses path, printing a located error on failure.
func (a *app) load(path string) (*document.System, error) {
	a.logger.Debug("loading document", "file", path)
	opts := append(a.cfg.DocumentOptions(), document.WithLogger(a.logger))
	sys, err := document.LoadFile(path, opts...)
	if err != nil {
		var le *document.LineError
		if errors.As(err, &le) {
			if werr := report.WriteParseError(a.out, path, err, a.report); werr != nil {
				return nil, werr
			}
			return nil, errReported
		}
		return nil, err
	}

	return sys, nil
}

// solve loads, validates and solves one file.
func (a *app) solve(path string, dump bool) error {
	sys, err := a.load(path)
	if err != nil {
		return err
	}
	if dump {
		if err = report.WriteSystem(a.out, sys, a.report); err != nil {
			return err
		}
	}
	opts, err := a.cfg.SolverOptions()
	if err != nil {
		return err
	}
	sol, err := sys.Solve(opts...)
	if err != nil {
		a.logger.Debug("solve failed", "file", path, "error", err)
		if werr := report.WriteParseError(a.out, path, err, a.report); werr != nil {
			return werr
		}
		return errReported
	}
	a.logger.Debug("solved", "file", path, "method", sol.Result.Method.String(),
		"iterations", sol.Result.Iterations, "residual", sol.Result.Residual)

	return report.WriteSolution(a.out, sol, a.report)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
