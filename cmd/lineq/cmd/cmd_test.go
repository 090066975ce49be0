package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineq/config"
)

// syncBuffer is a bytes.Buffer safe for the watch goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// workspace writes eq.txt with body and returns the directory.
func workspace(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "eq.txt"), []byte(body), 0o600))
	return dir
}

func run(ctx context.Context, args ...string) (string, error) {
	root := NewRootCmd()
	out := &syncBuffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func noConfig(dir string) string { return "--config=" + filepath.Join(dir, "none.toml") }

func TestSolve_DefaultsExtensionAndPrintsSorted(t *testing.T) {
	dir := workspace(t, "Y + X = 3;\nX - Y = 1;\n")
	out, err := run(context.Background(), "solve", "-q", noConfig(dir), filepath.Join(dir, "eq"))
	require.NoError(t, err)
	require.Equal(t, "X = 2\nY = 1\n", out)
}

func TestSolve_BannerAndDump(t *testing.T) {
	dir := workspace(t, "6Alpha+11=67;")
	out, err := run(context.Background(), "solve", "--dump", noConfig(dir), filepath.Join(dir, "eq.txt"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Linear Equation Solver - Version "+Version+"\n"))
	require.Contains(t, out, "A[0, 0] = 6\nb[0] = 56\n")
	require.Contains(t, out, "Alpha = 9.33333\n")
}

func TestSolve_YAMLAndMethod(t *testing.T) {
	dir := workspace(t, "4 X + Y = 6;\nX + 4 Y = 9;")
	out, err := run(context.Background(), "solve", "-q", noConfig(dir), "--format=yaml", "--method=sor", filepath.Join(dir, "eq"))
	require.NoError(t, err)
	require.Contains(t, out, "method: sor")
	require.Contains(t, out, "name: X")
}

func TestSolve_ParseErrorIsReported(t *testing.T) {
	dir := workspace(t, "X = 1;\nY + = 2;\n")
	out, err := run(context.Background(), "solve", "-q", noConfig(dir), filepath.Join(dir, "eq"))
	require.ErrorIs(t, err, errReported)
	require.Contains(t, out, "at line 2, column 4.\nA term was expected but none was found\n")
}

func TestSolve_CountMismatchIsReported(t *testing.T) {
	dir := workspace(t, "X + Y = 1;")
	out, err := run(context.Background(), "solve", "-q", noConfig(dir), filepath.Join(dir, "eq"))
	require.ErrorIs(t, err, errReported)
	require.Equal(t, "There are 2 variables and only 1 equations.\n", out)
}

func TestSolve_InvalidOverride(t *testing.T) {
	dir := workspace(t, "X = 1;")
	_, err := run(context.Background(), "solve", "-q", noConfig(dir), "--method=qr", filepath.Join(dir, "eq"))
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestSolve_ConfigFile(t *testing.T) {
	dir := workspace(t, "X = 1.23456789;")
	cfg := filepath.Join(dir, "lineq.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[output]\nprecision = 3\n"), 0o600))

	out, err := run(context.Background(), "solve", "-q", "--config="+cfg, filepath.Join(dir, "eq"))
	require.NoError(t, err)
	require.Equal(t, "X = 1.23\n", out)
}

func TestCheck(t *testing.T) {
	dir := workspace(t, "X + Y = 1;\nZ = 2;")
	out, err := run(context.Background(), "check", "-q", noConfig(dir), filepath.Join(dir, "eq"))
	require.ErrorIs(t, err, errReported)
	require.Contains(t, out, "2 equations, 3 variables\n")
	require.Contains(t, out, "block 1: underdetermined\n")
	require.Contains(t, out, "There are 3 variables and only 2 equations.\n")

	dir = workspace(t, "X = 1;")
	out, err = run(context.Background(), "check", "-q", noConfig(dir), filepath.Join(dir, "eq"))
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(out, "OK\n"))
}

func TestVersion(t *testing.T) {
	out, err := run(context.Background(), "version")
	require.NoError(t, err)
	require.Contains(t, out, "lineq v"+Version)
}

func TestWatch_ResolvesOnChange(t *testing.T) {
	dir := workspace(t, "X = 2;")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	root := NewRootCmd()
	out := &syncBuffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs([]string{"watch", "-q", noConfig(dir), filepath.Join(dir, "eq")})

	done := make(chan error, 1)
	go func() { done <- root.ExecuteContext(ctx) }()

	require.Eventually(t, func() bool { return strings.Contains(out.String(), "X = 2\n") },
		5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "eq.txt"), []byte("X = 5;"), 0o600))
	require.Eventually(t, func() bool { return strings.Contains(out.String(), "X = 5\n") },
		5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}
