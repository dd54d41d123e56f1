package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(LoadOptions{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	chdir(t, t.TempDir())

	file := writeFile(t, "contactform.yaml", `
logging:
  level: debug
form:
  mode: onBlur
output:
  format: pretty
theme:
  tokens:
    color.focus: "#000"
`)
	envFile := writeFile(t, "test.env", "CONTACTFORM_OUTPUT_PATH=out.txt\n")
	t.Setenv("CONTACTFORM_OUTPUT_FORMAT", "form")
	t.Setenv("CONTACTFORM_MAX_ATTEMPTS", "3")
	t.Setenv("CONTACTFORM_REVEAL_SECRETS", "true")
	t.Cleanup(func() { os.Unsetenv("CONTACTFORM_OUTPUT_PATH") })

	cfg, err := Load(LoadOptions{File: file, EnvFile: envFile})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := Default()
	want.Logging.Level = "debug"
	want.Form.Mode = "onBlur"
	want.Output = OutputConfig{Format: "form", Path: "out.txt"}
	want.Prompt = PromptConfig{RevealSecrets: true, MaxAttempts: 3}
	want.Theme.Tokens = map[string]string{"color.focus": "#000"}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Errors(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := Load(LoadOptions{File: "missing.yaml"}); err == nil {
		t.Fatal("expected error for missing config file")
	}
	if _, err := Load(LoadOptions{EnvFile: "missing.env"}); err == nil {
		t.Fatal("expected error for explicit missing env file")
	}

	t.Setenv("CONTACTFORM_MAX_ATTEMPTS", "many")
	if _, err := Load(LoadOptions{}); err == nil {
		t.Fatal("expected error for non-numeric max attempts")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "loud"
	cfg.Output.Format = "xml"
	cfg.Form.Mode = "whenever"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, fragment := range []string{"log level", "output format", "mode"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("error %q missing %q", err, fragment)
		}
	}
}
