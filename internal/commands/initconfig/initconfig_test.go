package initconfig

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/indaco/toolsver/internal/config"
	"github.com/indaco/toolsver/internal/testutils"
	"github.com/urfave/cli/v3"
)

func newApp() *cli.Command {
	return testutils.BuildCLIForTests(".", []*cli.Command{Run()})
}

func TestInitConfig_WritesDefault(t *testing.T) {
	dir := t.TempDir()
	testutils.Chdir(t, dir)

	out, err := testutils.RunCLICapture(t, newApp(), []string{"toolsver", "init-config"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Wrote "+config.YAMLFile) {
		t.Errorf("unexpected output %q", out)
	}

	cfg, err := config.LoadConfigFn()
	if err != nil {
		t.Fatalf("failed to load written config: %v", err)
	}
	if cfg == nil || cfg.Manifest != "package.manifest" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.MinimumToolsVersion != config.DefaultMinimumToolsVersion {
		t.Errorf("minimum = %q", cfg.MinimumToolsVersion)
	}
}

func TestInitConfig_Flags(t *testing.T) {
	dir := t.TempDir()
	testutils.Chdir(t, dir)

	_, err := testutils.RunCLICapture(t, newApp(), []string{
		"toolsver", "init-config", "--manifest", "Toolsfile", "--current", "5.9", "--theme", "charm",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content := testutils.ReadFile(t, filepath.Join(dir, config.YAMLFile))
	for _, want := range []string{"manifest: Toolsfile", "current-tools-version:", "5.9", "theme: charm"} {
		if !strings.Contains(content, want) {
			t.Errorf("expected %q in %q", want, content)
		}
	}
}

func TestInitConfig_TOML(t *testing.T) {
	dir := t.TempDir()
	testutils.Chdir(t, dir)

	out, err := testutils.RunCLICapture(t, newApp(), []string{"toolsver", "init-config", "--toml", "--manifest", "Toolsfile"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Wrote "+config.TOMLFile) {
		t.Errorf("unexpected output %q", out)
	}

	cfg, err := config.LoadConfigFn()
	if err != nil {
		t.Fatalf("failed to load written config: %v", err)
	}
	if cfg == nil || cfg.Manifest != "Toolsfile" {
		t.Errorf("unexpected config %+v", cfg)
	}

	_, err = testutils.RunCLICapture(t, newApp(), []string{"toolsver", "init-config", "--toml"})
	if !errors.Is(err, ErrConfigExists) {
		t.Errorf("expected ErrConfigExists for existing %s, got %v", config.TOMLFile, err)
	}
}

func TestInitConfig_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteTempFile(t, dir, config.YAMLFile, "manifest: keep\n")
	testutils.Chdir(t, dir)

	_, err := testutils.RunCLICapture(t, newApp(), []string{"toolsver", "init-config"})
	if !errors.Is(err, ErrConfigExists) {
		t.Fatalf("expected ErrConfigExists, got %v", err)
	}
	if got := testutils.ReadFile(t, filepath.Join(dir, config.YAMLFile)); got != "manifest: keep\n" {
		t.Errorf("config overwritten: %q", got)
	}

	if _, err := testutils.RunCLICapture(t, newApp(), []string{"toolsver", "init-config", "--force"}); err != nil {
		t.Fatalf("unexpected error with --force: %v", err)
	}
	if got := testutils.ReadFile(t, filepath.Join(dir, config.YAMLFile)); strings.Contains(got, "keep") {
		t.Errorf("config not overwritten: %q", got)
	}
}

func TestInitConfig_InvalidValue(t *testing.T) {
	testutils.Chdir(t, t.TempDir())

	_, err := testutils.RunCLICapture(t, newApp(), []string{"toolsver", "init-config", "--current", "v6"})
	if err == nil || !strings.Contains(err.Error(), "current-tools-version") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestInitConfig_SaveError(t *testing.T) {
	testutils.Chdir(t, t.TempDir())

	orig := config.SaveConfigFn
	t.Cleanup(func() { config.SaveConfigFn = orig })
	config.SaveConfigFn = func(context.Context, *config.Config, string) error { return errors.New("save failed") }

	_, err := testutils.RunCLICapture(t, newApp(), []string{"toolsver", "init-config"})
	if err == nil || !strings.Contains(err.Error(), "save failed") {
		t.Errorf("expected save error, got %v", err)
	}
}
