package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/superdesk/deskconf"
	"github.com/superdesk/deskconf/config"
	"github.com/superdesk/deskconf/report"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration document against the schema",
	Long: `Resolve the configuration document and report every schema violation.

Exits with status 1 when the document is missing, unparsable or invalid.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "List the recognized keys",
	Long: `List every recognized key path with its kind, merge strategy and
constraint. Map entries appear under a "*" segment.`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(schemaCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return err
	}

	p, err := newProvider(cfg)
	if err != nil {
		return err
	}

	src, err := deskconf.SelectSource(documentSources())
	if err != nil {
		return err
	}

	_, resolveErr := p.Resolve(src)

	formatter := report.NewFormatter(jsonOutput, quiet)
	if err = formatter.FormatValidation(cmd.OutOrStdout(), report.NewValidationResult(src, resolveErr)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if resolveErr != nil {
		return reportedError{resolveErr}
	}
	return nil
}

func runSchema(cmd *cobra.Command, _ []string) error {
	formatter := report.NewFormatter(jsonOutput, quiet)
	return formatter.FormatSchema(cmd.OutOrStdout(), deskconf.DefaultSchema().Describe())
}
