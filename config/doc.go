// Package config provides settings loading and validation for the deskconf command.
//
// These are the command's own settings (listen port, logging, CORS, strictness),
// not the host application's configuration document, which is resolved by the
// root deskconf package.
//
// # Configuration Precedence
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Environment variables (DESKCONF_ prefix)
//  3. CLI flags
//
// # Usage
//
//	cfg, err := config.Load(cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Store in context for subcommands
//	ctx = config.WithContext(ctx, cfg)
//
//	// Retrieve later
//	cfg, err = config.FromContext(ctx)
//
// # Environment Variables
//
// All settings keys map to environment variables with DESKCONF_ prefix:
//   - server.port → DESKCONF_SERVER_PORT
//   - document.strict → DESKCONF_DOCUMENT_STRICT
//   - log.level → DESKCONF_LOG_LEVEL
//
// Lists such as cors.allowed_origins are read from the environment as
// space-separated values.
//
// # Validation
//
// Settings are validated using struct tags:
//   - Port must be 1-65535
//   - Timeouts must be at least one second
//   - Log level must be debug, info, warn, or error
//   - Env must be dev, development, prod, or production
//   - CORS allowed origins are required when CORS is enabled
package config
