package builder

import (
	"time"

	"github.com/agentstation/utc"

	"github.com/agentstation/livingdoc/pkg/adapters"
	"github.com/agentstation/livingdoc/pkg/audit"
)

// Tool identity stamped into every trace step.
const (
	toolName    = "living-doc-toolkit"
	toolVersion = "1.0.0"
)

// normalizationStep is the single trace step the pipeline produces.
const normalizationStep = "normalization"

// buildEnvelope derives the audit envelope from the adapter result: the
// producer, run, and source descriptors are mirrored verbatim, every
// compatibility warning is carried into the normalization trace step, and
// the preserved original metadata is stored under the adapter's namespace.
// The step is modeled as instantaneous: start and finish both equal the
// construction instant.
func (b *Builder) buildEnvelope(result *adapters.Result, now utc.Time) (*audit.Envelope, error) {
	meta := result.Metadata

	warnings := make([]audit.Warning, 0, len(result.Warnings))
	for _, w := range result.Warnings {
		warnings = append(warnings, audit.Warning{
			Code:    w.Code,
			Message: w.Message,
			Context: w.Context,
		})
	}

	instant := now.Format(time.RFC3339)
	trace := []audit.TraceStep{{
		Step:        normalizationStep,
		Tool:        toolName,
		ToolVersion: toolVersion,
		StartedAt:   &instant,
		FinishedAt:  &instant,
		Warnings:    warnings,
	}}

	envelope := &audit.Envelope{
		SchemaVersion: audit.SchemaVersion,
		Producer: audit.Producer{
			Name:    meta.Producer.Name,
			Version: meta.Producer.Version,
			Build:   meta.Producer.Build,
		},
		Run: audit.Run{
			RunID:      meta.Run.RunID,
			RunAttempt: meta.Run.RunAttempt,
			Actor:      meta.Run.Actor,
			Workflow:   meta.Run.Workflow,
			Ref:        meta.Run.Ref,
			SHA:        meta.Run.SHA,
		},
		Source: audit.Source{
			Systems:      meta.Source.Systems,
			Repositories: meta.Source.Repositories,
			Organization: meta.Source.Organization,
			Enterprise:   meta.Source.Enterprise,
		},
		Trace: trace,
		Extensions: map[string]map[string]any{
			b.adapter: {"original_metadata": meta.OriginalMetadata},
		},
	}

	if err := envelope.Validate(); err != nil {
		return nil, err
	}
	return envelope, nil
}
