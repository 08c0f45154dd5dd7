// Package cmd implements the livingdoc command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/agentstation/livingdoc/pkg/errors"
	"github.com/agentstation/livingdoc/pkg/logging"
)

var (
	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "livingdoc",
	Short: "Living documentation normalization toolkit",
	Long: `Livingdoc transforms issue-tracker exports into canonical,
schema-validated document-ready JSON for downstream rendering, recording a
verifiable audit trail of how the transformation happened.

Input formats are recognized by pluggable producer adapters; the toolkit
ships with the collector-gh adapter for AbsaOSS/living-doc-collector-gh
exports.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupCommand,
}

// Execute runs the command tree and returns the process exit code.
func Execute(version, commit, date string) int {
	Version = version
	Commit = commit
	Date = date

	if err := rootCmd.Execute(); err != nil {
		logging.Err(err).Int("exit_code", errors.ExitCode(err)).Msg("Command failed")
		fmt.Fprintln(os.Stderr, FormatError(err))
		return errors.ExitCode(err)
	}
	return 0
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().Bool("verbose", false, "Enable verbose logging")
	rootCmd.PersistentFlags().String("log-format", "auto", "Log format (auto, console, json)")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig loads .env files and binds LIVINGDOC_* environment variables.
func initConfig() {
	_ = godotenv.Load()

	viper.SetEnvPrefix("LIVINGDOC")
	viper.AutomaticEnv()
}

// setupCommand configures logging before any subcommand runs.
func setupCommand(_ *cobra.Command, _ []string) error {
	level := "info"
	if viper.GetBool("verbose") {
		level = "debug"
	}
	logging.Configure(&logging.Config{
		Level:  level,
		Format: viper.GetString("log_format"),
		Output: "stderr",
	})
	return nil
}
