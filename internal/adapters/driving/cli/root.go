// Package cli implements the command-line interface for refbase.
// Commands hold no business logic; they call driving ports wired in by
// main and shape the output.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/refstack-labs/refbase-cli/internal/core/ports/driving"
	"github.com/refstack-labs/refbase-cli/internal/logger"
)

// version is set at wiring time from the build.
var version = "dev"

// Services wired in by main. A nil service makes its commands fail with
// a clear message instead of panicking.
var (
	reindexer driving.Reindexer
	retriever driving.Retriever
)

var (
	verboseFlag   bool
	configDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "refbase",
	Short: "Keep a Drive folder of PDFs indexed and answerable",
	Long: `refbase mirrors a Google Drive folder of PDF documents into a local
vector index and answers free-text questions with citations back to the
source documents.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		if initializer != nil {
			return initializer()
		}
		return nil
	},
}

// initializer runs after flags are parsed and before any command.
// main uses it to load config and wire services once the --config and
// --verbose flags are known.
var initializer func() error

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config", "", "config directory (default ~/.refbase)")
}

// SetInitializer registers the wiring hook run before any command.
func SetInitializer(fn func() error) {
	initializer = fn
}

// SetServices wires the driving ports into the command tree.
func SetServices(r driving.Reindexer, ret driving.Retriever) {
	reindexer = r
	retriever = ret
}

// SetVersion records the build version for the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// ConfigDir returns the --config flag value, empty for the default.
func ConfigDir() string {
	return configDirFlag
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
