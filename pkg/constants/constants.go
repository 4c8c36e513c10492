package constants

// CLIName is the binary name used in user-facing output and examples
const CLIName = "jsonata-lint"

// EndOfInput is the sentinel token the compiler reports when the error
// occurred after consuming all input rather than at a specific token
const EndOfInput = "(end)"

// DefaultMaxProblems caps the number of diagnostics collected per document
const DefaultMaxProblems = 100

// ConfigFileName is the per-project configuration file looked up from the
// working directory
const ConfigFileName = ".jsonata-lint.yml"

// SessionVersion is the current shareable-session envelope version
const SessionVersion = "1.0"

// JSONataExtensions contains the file extensions treated as dedicated
// expression files (one or more top-level JSONata expressions per file)
var JSONataExtensions = []string{".jsonata", ".jnt"}

// JSONExtensions contains the file extensions scanned for JSONata expressions
// embedded in JSON string values
var JSONExtensions = []string{".json"}
