package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/superdesk/deskconf/config"
	"github.com/superdesk/deskconf/report"
)

var (
	version = "dev"

	docPath    string
	jsonOutput bool
	quiet      bool
)

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "deskconf",
	Short:   "Typed configuration loader for the Superdesk planning client",
	Long: `deskconf resolves the Superdesk planning client configuration document.

The document path is taken from, in order:
  - the --config flag
  - the SUPERDESK_CONFIG environment variable
  - superdesk.config.yaml in the working directory

The document is validated against the schema of recognized keys and merged
over the built-in defaults. Any error exits with status 1.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return err
		}
		setupLogging(cfg)
		cmd.SetContext(config.WithContext(cmd.Context(), cfg))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&docPath, "config", "c", "", "configuration document path (env: SUPERDESK_CONFIG, default: ./superdesk.config.yaml)")
	rootCmd.PersistentFlags().Bool("strict", true, "reject unrecognized keys (env: DESKCONF_DOCUMENT_STRICT)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (env: DESKCONF_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output reports as JSON")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
}

// reportedError marks an error whose details were already written as a report.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error {
	return e.error
}

// execute runs cmd and writes any error through the selected formatter.
// It returns the process exit code.
func execute(cmd *cobra.Command, errOut io.Writer) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var reported reportedError
	if !errors.As(err, &reported) {
		_ = report.NewFormatter(jsonOutput, quiet).FormatError(errOut, err)
	}
	return 1
}

func main() {
	os.Exit(execute(rootCmd, os.Stderr))
}
