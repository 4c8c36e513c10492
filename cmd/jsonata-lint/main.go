package main

import (
	"fmt"
	"os"

	"github.com/jsonata-tools/jsonata-lint/pkg/cli"
	"github.com/jsonata-tools/jsonata-lint/pkg/console"
	"github.com/jsonata-tools/jsonata-lint/pkg/constants"
	"github.com/spf13/cobra"
)

// Build-time variables set by GoReleaser
var (
	version = "dev"
)

// Global flags
var verbose bool

// validateMode validates the mode flag value
func validateMode(mode string) error {
	if mode != "" && mode != "jsonata" && mode != "json" {
		return fmt.Errorf("invalid mode value '%s'. Must be 'jsonata' or 'json'", mode)
	}
	return nil
}

var rootCmd = &cobra.Command{
	Use:   constants.CLIName,
	Short: "Validate and evaluate JSONata expressions",
	Long: ` = JSONata expression linter

Validates JSONata expression files and JSON documents with embedded
expressions, reporting compile errors with precise line and column
positions plus fix suggestions. Expressions can also be evaluated
against JSON input and exchanged as portable session files.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate <pattern>...",
	Short: "Validate JSONata expression files",
	Long: `Validate JSONata expression files and report compile errors.

Patterns may be literal paths or doublestar globs. Files ending in
.jsonata or .jnt are treated as standalone expression documents; .json
files are scanned for embedded expression strings.

Examples:
  ` + constants.CLIName + ` validate queries/totals.jsonata
  ` + constants.CLIName + ` validate "queries/**/*.jsonata"
  ` + constants.CLIName + ` validate templates/report.json --mode json
  ` + constants.CLIName + ` validate "queries/**" --watch`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mode, _ := cmd.Flags().GetString("mode")
		maxProblems, _ := cmd.Flags().GetInt("max-problems")
		watch, _ := cmd.Flags().GetBool("watch")
		if err := validateMode(mode); err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			os.Exit(1)
		}

		opts := cli.ValidateOptions{Mode: mode, MaxProblems: maxProblems, Verbose: verbose}
		if watch {
			if err := cli.WatchFiles(args, opts); err != nil {
				fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
				os.Exit(1)
			}
			return
		}
		if err := cli.ValidateFiles(args, opts); err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			os.Exit(1)
		}
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval <expression-file> <data-file>",
	Short: "Evaluate a JSONata expression against a JSON document",
	Long: `Evaluate a JSONata expression file against a JSON data file and print
the result. Compile and runtime errors are reported with positions and
suggestions, the same way validate reports them.

Examples:
  ` + constants.CLIName + ` eval queries/totals.jsonata data/orders.json
  ` + constants.CLIName + ` eval queries/totals.jsonata data/orders.json --compact`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		compact, _ := cmd.Flags().GetBool("compact")
		if err := cli.EvalFile(args[0], args[1], cli.EvalOptions{Compact: compact, Verbose: verbose}); err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			os.Exit(1)
		}
	},
}

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Export, import and check portable session files",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var sessionExportCmd = &cobra.Command{
	Use:   "export <expression-file> <data-file> <out-file>",
	Short: "Evaluate an expression and save the exchange as a session file",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.ExportSession(args[0], args[1], args[2]); err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			os.Exit(1)
		}
	},
}

var sessionImportCmd = &cobra.Command{
	Use:   "import <session-file> <out-base>",
	Short: "Extract the expression and input from a session file",
	Long: `Extract the expression and JSON input from a session file, writing
<out-base>.jsonata and <out-base>.json next to each other.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.ImportSession(args[0], args[1]); err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			os.Exit(1)
		}
	},
}

var sessionCheckCmd = &cobra.Command{
	Use:   "check <session-file>",
	Short: "Validate a session file against the exchange schema",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.CheckSession(args[0]); err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			os.Exit(1)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(console.FormatInfoMessage(fmt.Sprintf("%s version %s", constants.CLIName, version)))
	},
}

func init() {
	// Add global verbose flag to root command
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output showing detailed information")

	validateCmd.Flags().StringP("mode", "m", "", "Force document mode (jsonata, json) instead of detecting by extension")
	validateCmd.Flags().Int("max-problems", 0, "Maximum number of problems to report per file")
	validateCmd.Flags().BoolP("watch", "w", false, "Watch matched files and revalidate on change")

	evalCmd.Flags().BoolP("compact", "c", false, "Print the result on a single line instead of indenting")

	sessionCmd.AddCommand(sessionExportCmd)
	sessionCmd.AddCommand(sessionImportCmd)
	sessionCmd.AddCommand(sessionCheckCmd)

	// Add all commands to root
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(console.FormatErrorMessage(err.Error()))
		os.Exit(1)
	}
}
