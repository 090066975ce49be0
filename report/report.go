// Package report renders solutions, parse errors and system dumps.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lineq/document"
	"github.com/katalvlaran/lineq/registry"
	"github.com/katalvlaran/lineq/structure"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for a format other than text or yaml.
var ErrUnknownFormat = errors.New("report: unknown format")

// Options controls rendering.
type Options struct {
	Format    string
	Precision int // significant digits; <= 0 means shortest exact
	Color     bool
}

func (o Options) number(v float64) string {
	if o.Precision <= 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', o.Precision, 64)
}

// solutionDoc is the YAML shape of a solution.
type solutionDoc struct {
	Method     string                `yaml:"method"`
	Iterations int                   `yaml:"iterations,omitempty"`
	Residual   float64               `yaml:"residual"`
	Variables  []document.Assignment `yaml:"variables"`
}

// WriteSolution prints one "name = value" line per variable in name order,
// or a YAML document.
func WriteSolution(w io.Writer, sol *document.Solution, opts Options) error {
	sorted := sol.Sorted()
	switch opts.Format {
	case FormatYAML:
		doc := solutionDoc{Variables: sorted}
		if sol.Result != nil {
			doc.Method = sol.Result.Method.String()
			doc.Iterations = sol.Result.Iterations
			doc.Residual = sol.Result.Residual
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("report: %w", err)
		}
		return enc.Close()

	case FormatText, "":
		var sb strings.Builder
		for _, a := range sorted {
			fmt.Fprintf(&sb, "%s = %s\n", opts.paint(NameStyle, a.Name), opts.number(a.Value))
		}
		_, err := io.WriteString(w, sb.String())
		return err
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, opts.Format)
}

// WriteParseError prints a load failure. A *document.LineError is shown as
//
//	Error in input file F at line L, column C.
//	<status message>
//
// any other error as its text.
func WriteParseError(w io.Writer, file string, err error, opts Options) error {
	var le *document.LineError
	if errors.As(err, &le) {
		_, werr := fmt.Fprintf(w, "%s\n%s\n",
			opts.paint(ErrorStyle, fmt.Sprintf("Error in input file %s at line %d, column %d.", file, le.Line, le.Column)),
			le.Message())
		return werr
	}
	_, werr := fmt.Fprintln(w, opts.paint(ErrorStyle, err.Error()))
	return werr
}

// WriteSystem dumps every A[i, j] of the square part and every b[i].
func WriteSystem(w io.Writer, sys *document.System, opts Options) error {
	var sb strings.Builder
	n := sys.Equations
	cols := sys.Vars.Len()
	for i := 0; i < n; i++ {
		for j := 0; j < cols; j++ {
			fmt.Fprintf(&sb, "A[%d, %d] = %s\n", i, j, opts.number(sys.A.Get(i, j)))
		}
	}
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "b[%d] = %s\n", i, opts.number(sys.B.Get(i)))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteBlocks lists the blocks with their 1-based equation numbers and
// variable names.
func WriteBlocks(w io.Writer, blocks []structure.Block, vars *registry.Registry, opts Options) error {
	var sb strings.Builder
	for i, b := range blocks {
		eqs := make([]string, len(b.Rows))
		for k, r := range b.Rows {
			eqs[k] = strconv.Itoa(r + 1)
		}
		names := make([]string, len(b.Cols))
		for k, c := range b.Cols {
			names[k] = vars.Name(c)
		}
		balance := b.Balance().String()
		if b.Square() {
			balance = opts.paint(NameStyle, balance)
		} else {
			balance = opts.paint(WarningStyle, balance)
		}
		fmt.Fprintf(&sb, "%s %s\n", opts.paint(TitleStyle, fmt.Sprintf("block %d:", i+1)), balance)
		fmt.Fprintf(&sb, "  equations: %s\n", orNone(eqs, opts))
		fmt.Fprintf(&sb, "  variables: %s\n", orNone(names, opts))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func orNone(items []string, opts Options) string {
	if len(items) == 0 {
		return opts.paint(MutedStyle, "none")
	}
	return strings.Join(items, ", ")
}
