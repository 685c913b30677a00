// Package deskconf loads, validates and resolves the configuration document
// of the Superdesk planning client.
//
// A document is read from one of an ordered list of candidate sources,
// checked against a closed schema of recognized keys, merged over built-in
// defaults and exposed as an immutable ResolvedConfig.
//
// # Key Components
//
//   - Provider: resolves documents against a Schema and a default Document
//   - Schema: tagged-union Node tree describing every recognized key
//   - ResolvedConfig: read-only typed view handed to the host application
//   - Source: a candidate document path tagged with where it came from
//
// # Source Precedence
//
// Candidates returns the sources in precedence order:
//
//  1. --config flag
//  2. SUPERDESK_CONFIG environment variable
//  3. superdesk.config.yaml in the working directory
//
// The first non-empty path wins. A missing file at that path is an error;
// lower-precedence candidates are not tried.
//
// # Merge Strategies
//
// Each schema node declares how a document value combines with its default:
//
//   - MergeReplace: the document value wins wholesale (scalars, profileLanguages)
//   - MergeUnion: list entries are appended after the defaults, de-duplicated (apps, importApps)
//   - MergeDeep: mappings merge key by key (features, workspace, validatorMediaMetadata)
//
// # Errors
//
// Resolve fails with an error wrapping one of:
//
//   - ErrNotFound: no file at the resolved path
//   - ErrParse: the file is not a YAML, JSON or TOML document
//   - ErrSchemaViolation: one or more *FieldError values naming the offending key path
//
// # Example Usage
//
//	p, err := deskconf.NewProvider()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg, err := p.Resolve(deskconf.Candidates(flagPath, os.Getenv(deskconf.EnvConfigPath))...)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if cfg.FeatureEnabled(deskconf.FeaturePlanning) {
//	    // ...
//	}
//
// See the config package for the CLI's own settings and the http package
// for serving a ResolvedConfig to the browser client.
package deskconf
