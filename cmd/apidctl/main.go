// cmd/apidctl/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "apidctl",
	Short: "Identifier namespace and reset-cause tooling",
	Long: `apidctl validates a mission's APID namespace, renders and decodes its
identifier table, classifies reset codes, and monitors a processor's
reset cause into a boot status block.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		validateCmd,
		tableCmd,
		decodeCmd,
		classifyCmd,
		monitorCmd,
		statusCmd,
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
