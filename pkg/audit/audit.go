// Package audit defines the Audit Envelope v1 provenance record: who
// produced the input, which run triggered it, where the data came from, and
// the ordered trace of processing steps with their warnings. The schema is
// closed; unknown fields are rejected on decode, not ignored.
package audit

import (
	"strings"

	"github.com/agentstation/livingdoc/pkg/errors"
)

// SchemaVersion is the fixed Audit Envelope schema version literal. Any
// other value is a validation failure.
const SchemaVersion = "1.0"

// Envelope is the Audit Envelope v1 root record.
type Envelope struct {
	SchemaVersion string      `json:"schema_version"`
	Producer      Producer    `json:"producer"`
	Run           Run         `json:"run"`
	Source        Source      `json:"source"`
	Trace         []TraceStep `json:"trace"`

	// Extensions carries namespaced producer-specific data, keyed by
	// adapter name (e.g. the preserved original metadata block).
	Extensions map[string]map[string]any `json:"extensions"`
}

// Producer identifies the tool that generated the source payload.
type Producer struct {
	Name    string  `json:"name"`    // Required, non-empty
	Version string  `json:"version"` // Producer version (semver)
	Build   *string `json:"build"`
}

// Run describes the CI run that triggered the producer.
type Run struct {
	RunID      *string `json:"run_id"`
	RunAttempt *string `json:"run_attempt"`
	Actor      *string `json:"actor"`
	Workflow   *string `json:"workflow"`
	Ref        *string `json:"ref"`
	SHA        *string `json:"sha"`
}

// Source describes the systems and repositories the data was collected from.
type Source struct {
	Systems      []string `json:"systems"` // Required, non-empty
	Repositories []string `json:"repositories"`
	Organization *string  `json:"organization"`
	Enterprise   *string  `json:"enterprise"`
}

// TraceStep is one named stage in the envelope's processing history.
type TraceStep struct {
	Step        string    `json:"step"`
	Tool        string    `json:"tool"`
	ToolVersion string    `json:"tool_version"`
	StartedAt   *string   `json:"started_at"`
	FinishedAt  *string   `json:"finished_at"`
	Warnings    []Warning `json:"warnings"`
}

// Warning is a compatibility advisory carried by a trace step.
type Warning struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Context *string `json:"context"`
}

// Validate checks the envelope against the closed-schema field constraints.
func (e *Envelope) Validate() error {
	if e.SchemaVersion != SchemaVersion {
		return errors.NewSchemaValidationError("audit.v1", "schema_version",
			"schema_version must be \""+SchemaVersion+"\"")
	}
	if err := e.Producer.Validate(); err != nil {
		return err
	}
	if err := e.Source.Validate(); err != nil {
		return err
	}
	for i := range e.Trace {
		if err := e.Trace[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks producer field constraints.
func (p *Producer) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.NewSchemaValidationError("audit.v1", "producer.name",
			"name must be non-empty")
	}
	return nil
}

// Validate checks source field constraints.
func (s *Source) Validate() error {
	if len(s.Systems) == 0 {
		return errors.NewSchemaValidationError("audit.v1", "source.systems",
			"systems must be non-empty")
	}
	return nil
}

// Validate checks trace step field constraints.
func (t *TraceStep) Validate() error {
	switch {
	case t.Step == "":
		return errors.NewSchemaValidationError("audit.v1", "trace.step",
			"step must be non-empty")
	case t.Tool == "":
		return errors.NewSchemaValidationError("audit.v1", "trace.tool",
			"tool must be non-empty")
	case t.ToolVersion == "":
		return errors.NewSchemaValidationError("audit.v1", "trace.tool_version",
			"tool_version must be non-empty")
	}
	for i := range t.Warnings {
		if err := t.Warnings[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks warning field constraints.
func (w *Warning) Validate() error {
	if w.Code == "" {
		return errors.NewSchemaValidationError("audit.v1", "warnings.code",
			"code must be non-empty")
	}
	if w.Message == "" {
		return errors.NewSchemaValidationError("audit.v1", "warnings.message",
			"message must be non-empty")
	}
	return nil
}
