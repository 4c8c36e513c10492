package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jsonata-tools/jsonata-lint/pkg/console"
)

// debounceDelay batches rapid editor write events into one validation pass.
const debounceDelay = 300 * time.Millisecond

// WatchFiles validates the matched files once, then re-validates on every
// filesystem change until interrupted. The watcher covers the directories of
// the matched files; only files that match the original patterns are
// re-validated.
func WatchFiles(patterns []string, opts ValidateOptions) error {
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

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]struct{})
	for _, file := range files {
		dir := filepath.Dir(file)
		if _, ok := watched[dir]; ok {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		watched[dir] = struct{}{}
	}

	fmt.Println(console.FormatInfoMessage(fmt.Sprintf("Watching %d files for changes, Ctrl+C to stop", len(files))))

	// Initial pass so the terminal reflects the current state immediately.
	if err := printReports(validateAll(files, cfg, opts), opts.Verbose); err != nil {
		fmt.Println(console.FormatWarningMessage(err.Error()))
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	targets := make(map[string]struct{}, len(files))
	for _, f := range files {
		targets[f] = struct{}{}
	}

	var debounce *time.Timer
	pending := make(map[string]struct{})
	revalidate := make(chan []string)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher channel closed")
			}
			if _, ok := targets[event.Name]; !ok {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			pending[event.Name] = struct{}{}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				changed := make([]string, 0, len(pending))
				for f := range pending {
					changed = append(changed, f)
				}
				pending = make(map[string]struct{})
				revalidate <- changed
			})

		case changed := <-revalidate:
			if opts.Verbose {
				fmt.Println(console.FormatVerboseMessage(fmt.Sprintf("re-validating %d changed files", len(changed))))
			}
			if err := printReports(validateAll(changed, cfg, opts), opts.Verbose); err != nil {
				fmt.Println(console.FormatWarningMessage(err.Error()))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher channel closed")
			}
			fmt.Fprintln(os.Stderr, console.FormatWarningMessage(err.Error()))

		case <-sigChan:
			fmt.Println(console.FormatInfoMessage("stopping watch"))
			return nil
		}
	}
}
