package deskconf

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/spf13/afero"
)

const (
	// DefaultFileName is the document looked up in the working directory
	// when neither a flag nor the environment names one.
	DefaultFileName = "superdesk.config.yaml"
	// EnvConfigPath is the environment variable holding an override path.
	EnvConfigPath = "SUPERDESK_CONFIG"
)

// Candidates builds the ordered source list flag, env, default.
// Empty paths are kept; SelectSource skips them.
func Candidates(flagPath, envPath string) []Source {
	return []Source{
		{Origin: OriginFlag, Path: flagPath},
		{Origin: OriginEnv, Path: envPath},
		{Origin: OriginDefault, Path: DefaultFileName},
	}
}

// SelectSource returns the first candidate with a non-empty path.
// Lower-precedence candidates are never consulted once one is chosen,
// even when the chosen file does not exist.
func SelectSource(sources []Source) (Source, error) {
	for _, s := range sources {
		if s.Path != "" {
			return s, nil
		}
	}
	return Source{}, fmt.Errorf("%w: no configuration source given", ErrNotFound)
}

// Provider resolves configuration documents against a schema and a set
// of defaults. A Provider holds no mutable state after construction.
type Provider struct {
	schema   *Schema
	defaults Document
	strict   bool
	fs       afero.Fs
	logger   *slog.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithStrict rejects unrecognized keys when true and passes them
// through when false.
func WithStrict(strict bool) Option {
	return func(p *Provider) { p.strict = strict }
}

// WithFs sets the filesystem documents are read from.
func WithFs(fsys afero.Fs) Option {
	return func(p *Provider) { p.fs = fsys }
}

// WithDefaults replaces the built-in default document. The provider
// keeps its own copy.
func WithDefaults(doc Document) Option {
	return func(p *Provider) { p.defaults = doc.Clone() }
}

// WithSchema replaces the built-in schema.
func WithSchema(s *Schema) Option {
	return func(p *Provider) { p.schema = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(p *Provider) { p.logger = l }
}

// NewProvider creates a Provider. It is strict and reads from the OS
// filesystem unless told otherwise. The defaults are validated against
// the schema here so that a bad default never reaches Resolve.
func NewProvider(opts ...Option) (*Provider, error) {
	p := &Provider{
		schema:   DefaultSchema(),
		defaults: DefaultDocument(),
		strict:   true,
		fs:       afero.NewOsFs(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.schema == nil || p.schema.root == nil || p.schema.root.Kind != KindRecord {
		return nil, fmt.Errorf("%w: schema root must be a record", ErrInvalidInput)
	}
	if p.fs == nil {
		return nil, fmt.Errorf("%w: filesystem cannot be nil", ErrInvalidInput)
	}

	if err := p.schema.Validate(p.defaults, p.strict); err != nil {
		return nil, fmt.Errorf("validate defaults: %w", err)
	}
	p.defaults = Document(normalize(p.defaults).(map[string]any))

	return p, nil
}

func (p *Provider) Schema() *Schema {
	return p.schema
}

// Defaults returns a copy of the provider's default document.
func (p *Provider) Defaults() Document {
	return p.defaults.Clone()
}

func (p *Provider) Strict() bool {
	return p.strict
}

// Resolve selects a source from the ordered candidates, reads and parses
// it, validates it, merges it over the defaults and returns the result.
// Errors wrap ErrNotFound, ErrParse or ErrSchemaViolation; no partial
// configuration is ever returned.
func (p *Provider) Resolve(sources ...Source) (*ResolvedConfig, error) {
	src, err := SelectSource(sources)
	if err != nil {
		return nil, err
	}

	fi, err := p.fs.Stat(src.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: config file %s", ErrNotFound, src)
		}
		return nil, fmt.Errorf("stat config %s: %w", src, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%w: config file %s is a directory", ErrNotFound, src)
	}

	data, err := afero.ReadFile(p.fs, src.Path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", src, err)
	}

	raw, err := Decode(data, FormatFromPath(src.Path))
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", src, err)
	}

	return p.resolve(raw, src)
}

// ResolveDocument resolves an already decoded document as if it had
// been read from src.
func (p *Provider) ResolveDocument(doc Document, src Source) (*ResolvedConfig, error) {
	var raw any
	if doc != nil {
		raw = map[string]any(doc)
	}
	return p.resolve(raw, src)
}

func (p *Provider) resolve(raw any, src Source) (*ResolvedConfig, error) {
	if err := p.schema.Validate(raw, p.strict); err != nil {
		return nil, fmt.Errorf("config file %s: %w", src, err)
	}

	var doc Document
	if m, ok := normalize(raw).(map[string]any); ok {
		doc = Document(m)
	}

	merged := p.schema.Merge(p.defaults, doc)
	p.logger.Debug("configuration resolved",
		"source", src.Path,
		"origin", src.Origin,
		"document_keys", len(doc),
		"strict", p.strict,
	)

	return newResolvedConfig(p.schema, merged, src), nil
}
