// Package testutils holds helpers shared by toolsver tests.
package testutils

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v3"
)

// WriteTempConfig writes content to a .toolsver.yaml file in a fresh
// temporary directory and returns the file path.
func WriteTempConfig(t *testing.T, content string) string {
	t.Helper()
	return WriteTempFile(t, t.TempDir(), ".toolsver.yaml", content)
}

// WriteTempFile writes content to dir/name and returns the file path.
func WriteTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// ReadFile returns the contents of path, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// Chdir switches to dir for the rest of the test.
func Chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		orig = os.TempDir()
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir to %s: %v", dir, err)
	}
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

// BuildCLIForTests returns a root command carrying the global --path flag
// (defaulting to root) and the given subcommands.
func BuildCLIForTests(root string, commands []*cli.Command) *cli.Command {
	return &cli.Command{
		Name: "toolsver",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "path",
				Aliases: []string{"p"},
				Value:   root,
			},
		},
		Commands: commands,
	}
}

// RunCLITest runs app with args from workdir and fails the test on error.
func RunCLITest(t *testing.T, app *cli.Command, args []string, workdir string) {
	t.Helper()
	if err := RunCLITestAllowError(t, app, args, workdir); err != nil {
		t.Fatalf("app.Run(%v) failed: %v", args, err)
	}
}

// RunCLITestAllowError runs app with args from workdir and returns its error.
func RunCLITestAllowError(t *testing.T, app *cli.Command, args []string, workdir string) error {
	t.Helper()
	if workdir != "" {
		Chdir(t, workdir)
	}
	return app.Run(context.Background(), args)
}

// RunCLICapture runs app with args and returns what it wrote to its Writer.
func RunCLICapture(t *testing.T, app *cli.Command, args []string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app.Writer = &buf
	err := app.Run(context.Background(), args)
	return buf.String(), err
}

// CaptureStdout returns everything fn writes to os.Stdout.
func CaptureStdout(fn func()) (string, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}

	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	done := make(chan struct{})
	var buf bytes.Buffer
	var copyErr error
	go func() {
		_, copyErr = io.Copy(&buf, r)
		close(done)
	}()

	fn()

	_ = w.Close()
	<-done
	_ = r.Close()
	return buf.String(), copyErr
}
