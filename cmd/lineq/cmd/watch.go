package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lineq/document"
)

// debounceDelay is how long the file must stay quiet before it is solved
// again, so that a save made of several writes is read once, complete.
const debounceDelay = 200 * time.Millisecond

func newWatchCmd(o *rootOptions) *cobra.Command {
	var ov overrides
	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Solve FILE and solve again whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.newApp(cmd, ov)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.watch(ctx, document.ResolvePath(args[0]))
		},
	}
	cmd.Flags().StringVar(&ov.method, "method", "", "gauss, jacobi, gauss-seidel or sor")
	cmd.Flags().StringVar(&ov.format, "format", "", "output format: text or yaml")

	return cmd
}

// watch solves path once, then again on every write until ctx is done.
// The directory is watched rather than the file so that editors which
// replace the file on save are followed.
func (a *app) watch(ctx context.Context, path string) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err = watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}
	a.logger.Info("watching for changes", "file", target)

	a.rerun(path)
	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			a.logger.Info("stopping file watcher")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			a.logger.Debug("file changed", "file", event.Name, "op", event.Op.String())
			settle = time.After(debounceDelay)

		case <-settle:
			settle = nil
			a.rerun(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Error("watcher error", "error", err)
		}
	}
}

// rerun solves once; failures are printed and do not stop watching.
func (a *app) rerun(path string) {
	fmt.Fprintf(a.out, "--- %s (%s)\n", filepath.Base(path), time.Now().Format(time.TimeOnly))
	if err := a.solve(path, false); err != nil && !errors.Is(err, errReported) {
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
}
