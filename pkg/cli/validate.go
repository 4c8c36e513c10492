// Package cli implements the jsonata-lint commands on top of the validator
// core: file discovery, parallel validation, watch mode, evaluation and
// session handling.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sourcegraph/conc/pool"

	"github.com/jsonata-tools/jsonata-lint/pkg/console"
	"github.com/jsonata-tools/jsonata-lint/pkg/constants"
	"github.com/jsonata-tools/jsonata-lint/pkg/jsonata"
	"github.com/jsonata-tools/jsonata-lint/pkg/validator"
)

// maxConcurrentFiles bounds the validation worker pool.
const maxConcurrentFiles = 8

// ValidateOptions carries the validate command's flags.
type ValidateOptions struct {
	// Mode forces extraction mode for every file: "jsonata" or "json";
	// empty selects by config override, then file extension.
	Mode        string
	MaxProblems int
	Verbose     bool
}

// fileReport is one file's validation outcome.
type fileReport struct {
	path    string
	source  string
	diags   []validator.Diagnostic
	skipped bool
	err     error
}

// ValidateFiles expands patterns, validates every matched file concurrently
// and prints the diagnostics. It returns an error when any file produced
// diagnostics, so the command exits nonzero for CI use.
func ValidateFiles(patterns []string, opts ValidateOptions) error {
	files, err := expandPatterns(patterns)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files matched %s", strings.Join(patterns, ", "))
	}

	cfg, err := LoadConfig(".")
	if err != nil {
		return err
	}

	spin := console.NewSpinner(fmt.Sprintf("Validating %d files...", len(files)))
	spin.Start()
	reports := validateAll(files, cfg, opts)
	spin.Stop()

	return printReports(reports, opts.Verbose)
}

// validateAll runs the validation pipeline over files with a bounded pool.
// The core is pure, so files can be processed without coordination.
func validateAll(files []string, cfg *Config, opts ValidateOptions) []fileReport {
	compiler := jsonata.New()

	p := pool.NewWithResults[fileReport]().WithMaxGoroutines(maxConcurrentFiles)
	for _, file := range files {
		file := file
		p.Go(func() fileReport {
			return validateOne(file, cfg, compiler, opts)
		})
	}

	reports := p.Wait()
	sort.Slice(reports, func(i, j int) bool { return reports[i].path < reports[j].path })
	return reports
}

func validateOne(path string, cfg *Config, compiler validator.Compiler, opts ValidateOptions) fileReport {
	kind, ok := documentKind(path, cfg, opts.Mode)
	if !ok {
		return fileReport{path: path, skipped: true}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fileReport{path: path, err: fmt.Errorf("failed to read %s: %w", path, err)}
	}
	source := string(data)

	vopts := validator.Options{
		MaxProblems:        valueOr(opts.MaxProblems, cfg.MaxProblems),
		DisableSuggestions: !cfg.SuggestionsEnabled(),
	}
	diags := validator.Validate(path, source, kind, compiler, vopts)
	return fileReport{path: path, source: source, diags: diags}
}

func printReports(reports []fileReport, verbose bool) error {
	problems := 0
	failures := 0

	for _, r := range reports {
		switch {
		case r.err != nil:
			failures++
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(r.err.Error()))
		case r.skipped:
			if verbose {
				fmt.Println(console.FormatVerboseMessage(fmt.Sprintf("skipping %s: unknown file type", r.path)))
			}
		case len(r.diags) > 0:
			problems += len(r.diags)
			for _, d := range r.diags {
				fmt.Print(console.FormatDiagnostic(d, r.source))
			}
		case verbose:
			fmt.Println(console.FormatSuccessMessage(r.path))
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d files could not be validated", failures)
	}
	if problems > 0 {
		return fmt.Errorf("found %d problems", problems)
	}
	fmt.Println(console.FormatSuccessMessage("no problems found"))
	return nil
}

// expandPatterns resolves doublestar globs and literal paths to files.
func expandPatterns(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[{") {
			add(pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			add(m)
		}
	}
	return files, nil
}

// documentKind selects the extraction mode for path: the --mode flag wins,
// then config overrides, then the file extension.
func documentKind(path string, cfg *Config, modeFlag string) (validator.DocumentKind, bool) {
	switch modeFlag {
	case "jsonata":
		return validator.KindJSONata, true
	case "json":
		return validator.KindJSON, true
	}

	if kind, ok := cfg.ModeFor(path); ok {
		return kind, true
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range constants.JSONataExtensions {
		if ext == e {
			return validator.KindJSONata, true
		}
	}
	for _, e := range constants.JSONExtensions {
		if ext == e {
			return validator.KindJSON, true
		}
	}
	return 0, false
}

func valueOr(primary, fallback int) int {
	if primary > 0 {
		return primary
	}
	return fallback
}
