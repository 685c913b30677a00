package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/superdesk/deskconf"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the resolved configuration",
	Long: `Resolve the configuration document and print it merged over the
built-in defaults.`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the built-in default document",
	Args:  cobra.NoArgs,
	RunE:  runDefaults,
}

var outputFormat string

func init() {
	for _, cmd := range []*cobra.Command{resolveCmd, defaultsCmd} {
		cmd.Flags().StringVarP(&outputFormat, "format", "f", "yaml", "output format: yaml, json, toml")
		rootCmd.AddCommand(cmd)
	}
}

func runResolve(cmd *cobra.Command, _ []string) error {
	format, err := deskconf.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	resolved, _, err := resolveDocument(cmd)
	if err != nil {
		return err
	}

	return printDocument(cmd, resolved.Document(), format)
}

func runDefaults(cmd *cobra.Command, _ []string) error {
	format, err := deskconf.ParseFormat(outputFormat)
	if err != nil {
		return err
	}

	return printDocument(cmd, deskconf.DefaultDocument(), format)
}

func printDocument(cmd *cobra.Command, doc deskconf.Document, format deskconf.Format) error {
	data, err := deskconf.Encode(doc, format)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	out := cmd.OutOrStdout()
	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, _ = fmt.Fprintln(out)
	}
	return nil
}
