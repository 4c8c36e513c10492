package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsonata-tools/jsonata-lint/pkg/jsonata"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidateOneCleanFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "clean.jsonata", "$count(users)\n")

	report := validateOne(path, &Config{}, jsonata.New(), ValidateOptions{})
	if report.err != nil {
		t.Fatalf("validateOne() error: %v", report.err)
	}
	if report.skipped {
		t.Fatal("validateOne() skipped a .jsonata file")
	}
	if len(report.diags) != 0 {
		t.Errorf("diagnostics = %+v, want none", report.diags)
	}
}

func TestValidateOneBrokenFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.jsonata", "$count(items\n")

	report := validateOne(path, &Config{}, jsonata.New(), ValidateOptions{})
	if report.err != nil {
		t.Fatalf("validateOne() error: %v", report.err)
	}
	if len(report.diags) == 0 {
		t.Fatal("expected diagnostics for an unbalanced expression")
	}
	if report.diags[0].Path != path {
		t.Errorf("diagnostic path = %q, want %q", report.diags[0].Path, path)
	}
}

func TestValidateOneSkipsUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.md", "# not an expression")

	report := validateOne(path, &Config{}, jsonata.New(), ValidateOptions{})
	if !report.skipped {
		t.Error("expected unknown extensions to be skipped")
	}
}

func TestValidateOneMissingFile(t *testing.T) {
	report := validateOne(filepath.Join(t.TempDir(), "gone.jsonata"), &Config{}, jsonata.New(), ValidateOptions{})
	if report.err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestExpandPatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.jsonata", "$x")
	writeFile(t, dir, "b.jsonata", "$y")
	writeFile(t, dir, "c.json", "{}")

	files, err := expandPatterns([]string{filepath.Join(dir, "*.jsonata")})
	if err != nil {
		t.Fatalf("expandPatterns() error: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("expandPatterns() matched %d files, want 2: %v", len(files), files)
	}

	// Literal paths pass through without hitting the filesystem.
	files, err = expandPatterns([]string{"does/not/exist.jsonata"})
	if err != nil {
		t.Fatalf("expandPatterns() error: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("expandPatterns() = %v, want the literal path", files)
	}

	// Duplicates collapse.
	p := filepath.Join(dir, "a.jsonata")
	files, err = expandPatterns([]string{p, p})
	if err != nil {
		t.Fatalf("expandPatterns() error: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("expandPatterns() = %v, want one entry", files)
	}
}
