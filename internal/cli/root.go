// Package cli wires folio's services together behind a cobra command tree:
// the terminal UI on the root command and the web server under serve.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"folio/internal/logger"
)

var (
	configPath  string
	contentPath string
	envFile     string
	debugMode   bool

	version, commit, date = "dev", "none", "unknown"
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A portfolio you browse with a command palette",
	Long: `folio renders a developer portfolio in the terminal. Press ctrl+k to
open the command palette, type to filter, and enter to jump to a section.
Run "folio serve" to publish the same content over HTTP.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/folio/config.toml)")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "portfolio TOML file, watched for changes (default embedded)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with SMTP and FOLIO_* settings")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(serveCmd, messagesCmd, versionCmd)
}

func initLogging() {
	logger.SetDebug(debugMode)
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("folio %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("folio %s\n", version)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), versionTemplate())
	},
}

// ExecuteArgs runs the command tree with explicit arguments
func ExecuteArgs(args []string) error {
	rootCmd.SetArgs(args)
	return Execute()
}

// Main is the process entry point shared by the binaries. Extra arguments
// are prepended to the command line.
func Main(prefix ...string) {
	args := append(prefix, os.Args[1:]...)
	if err := ExecuteArgs(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
