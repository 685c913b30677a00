package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/superdesk/deskconf"
	"github.com/superdesk/deskconf/config"
)

// documentSources lists the document candidates in precedence order.
func documentSources() []deskconf.Source {
	return deskconf.Candidates(docPath, os.Getenv(deskconf.EnvConfigPath))
}

func newProvider(cfg *config.Config) (*deskconf.Provider, error) {
	p, err := deskconf.NewProvider(
		deskconf.WithStrict(cfg.Document.Strict),
		deskconf.WithLogger(slog.Default()),
	)
	if err != nil {
		return nil, fmt.Errorf("create provider: %w", err)
	}
	return p, nil
}

// resolveDocument loads the command settings from the context and resolves
// the document named by the flag, the environment or the default file.
func resolveDocument(cmd *cobra.Command) (*deskconf.ResolvedConfig, *config.Config, error) {
	cfg, err := config.FromContext(cmd.Context())
	if err != nil {
		return nil, nil, err
	}

	p, err := newProvider(cfg)
	if err != nil {
		return nil, nil, err
	}

	resolved, err := p.Resolve(documentSources()...)
	if err != nil {
		return nil, nil, err
	}

	slog.Info("configuration loaded", "source", resolved.Source().String())
	return resolved, cfg, nil
}
