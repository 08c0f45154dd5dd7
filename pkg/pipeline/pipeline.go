// Package pipeline orchestrates one normalization run: read the input
// document, resolve the adapter, parse into the intermediate
// representation, build the Canonical Document, validate it against the
// schema, and write it out. Each invocation is independent and stateless;
// a failure at any stage unwinds the whole run and no output is produced.
package pipeline

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/livingdoc/internal/registry"
	"github.com/agentstation/livingdoc/pkg/adapters"
	"github.com/agentstation/livingdoc/pkg/builder"
	"github.com/agentstation/livingdoc/pkg/docready"
	"github.com/agentstation/livingdoc/pkg/errors"
	"github.com/agentstation/livingdoc/pkg/jsonio"
	"github.com/agentstation/livingdoc/pkg/logging"
)

// SourceAuto selects adapter detection instead of an explicit adapter name.
const SourceAuto = "auto"

// Pipeline runs the normalization service. The zero value is not usable;
// construct with New.
type Pipeline struct {
	clock  builder.Clock
	logger *zerolog.Logger
}

// New creates a Pipeline.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithClock overrides the builder's construction-instant clock.
func WithClock(clock builder.Clock) Option {
	return func(p *Pipeline) {
		p.clock = clock
	}
}

// WithLogger sets the logger used for progress and warning reporting.
// Log output is informational only; it never affects control flow.
func WithLogger(logger *zerolog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// Run executes the full pipeline for one input/output file pair and
// returns the document that was written.
func (p *Pipeline) Run(inputPath, outputPath string, opts Options) (*docready.Document, error) {
	log := p.logger
	log.Info().Str("input", inputPath).Str("output", outputPath).
		Msg("Starting normalization")

	payload, err := jsonio.ReadFile(inputPath)
	if err != nil {
		return nil, err
	}

	adapter, err := p.resolveAdapter(payload, opts.Source)
	if err != nil {
		return nil, err
	}

	result, err := adapter.Parse(payload)
	if err != nil {
		return nil, err
	}

	log.Info().Int("items", len(result.Items)).Str("adapter", adapter.Name()).
		Msg("Parsed input")
	for _, warning := range result.Warnings {
		log.Warn().Str("code", warning.Code).Msg(warning.Message)
	}

	b := builder.New(adapter.Name(),
		builder.WithClock(p.clock),
		builder.WithDocumentTitle(opts.DocumentTitle),
		builder.WithDocumentVersion(opts.DocumentVersion),
	)
	doc, err := b.Build(result)
	if err != nil {
		return nil, errors.WrapNormalization("build", err)
	}

	// Defensive gate: the in-memory document already validated at
	// construction time, but the serialized form must also satisfy the
	// published schema before anything touches disk.
	if err := docready.ValidateAgainstSchema(doc); err != nil {
		return nil, err
	}

	if err := jsonio.WriteFile(outputPath, doc); err != nil {
		return nil, err
	}

	log.Info().
		Int("user_stories", len(doc.Content.UserStories)).
		Str("document_title", doc.Meta.DocumentTitle).
		Str("document_version", doc.Meta.DocumentVersion).
		Str("generated_at", doc.Meta.GeneratedAt).
		Msg("Normalization completed")

	return doc, nil
}

// resolveAdapter selects the adapter: "auto" (or empty) runs detection; an
// explicit name bypasses detection but still runs full parsing.
func (p *Pipeline) resolveAdapter(payload map[string]any, source string) (adapters.Adapter, error) {
	if source == "" || source == SourceAuto {
		adapter, err := registry.Detect(payload)
		if err != nil {
			return nil, err
		}
		p.logger.Info().Str("adapter", adapter.Name()).Msg("Detected adapter")
		return adapter, nil
	}

	adapter, err := registry.Get(source)
	if err != nil {
		return nil, err
	}
	p.logger.Info().Str("adapter", adapter.Name()).Msg("Using explicit adapter")
	return adapter, nil
}
