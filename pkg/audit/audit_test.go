package audit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/livingdoc/pkg/audit"
	"github.com/agentstation/livingdoc/pkg/errors"
)

func validEnvelope() *audit.Envelope {
	instant := "2024-06-01T12:00:00Z"
	context := "metadata.generator.version"
	return &audit.Envelope{
		SchemaVersion: audit.SchemaVersion,
		Producer: audit.Producer{
			Name:    "AbsaOSS/living-doc-collector-gh",
			Version: "1.2.3",
		},
		Run: audit.Run{},
		Source: audit.Source{
			Systems:      []string{"github"},
			Repositories: []string{"acme/widgets"},
		},
		Trace: []audit.TraceStep{{
			Step:        "normalization",
			Tool:        "living-doc-toolkit",
			ToolVersion: "1.0.0",
			StartedAt:   &instant,
			FinishedAt:  &instant,
			Warnings: []audit.Warning{{
				Code:    "VERSION_MISMATCH",
				Message: "out of range",
				Context: &context,
			}},
		}},
		Extensions: map[string]map[string]any{
			"collector-gh": {"original_metadata": map[string]any{}},
		},
	}
}

func TestEnvelopeValidate(t *testing.T) {
	t.Run("valid envelope", func(t *testing.T) {
		assert.NoError(t, validEnvelope().Validate())
	})

	t.Run("wrong schema version", func(t *testing.T) {
		envelope := validEnvelope()
		envelope.SchemaVersion = "2.0"
		err := envelope.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrSchemaValidation))
		assert.Contains(t, err.Error(), "schema_version")
	})

	t.Run("empty producer name", func(t *testing.T) {
		envelope := validEnvelope()
		envelope.Producer.Name = "  "
		err := envelope.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "producer.name")
	})

	t.Run("empty source systems", func(t *testing.T) {
		envelope := validEnvelope()
		envelope.Source.Systems = nil
		err := envelope.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "source.systems")
	})

	t.Run("trace step missing tool", func(t *testing.T) {
		envelope := validEnvelope()
		envelope.Trace[0].Tool = ""
		err := envelope.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "trace.tool")
	})

	t.Run("warning missing message", func(t *testing.T) {
		envelope := validEnvelope()
		envelope.Trace[0].Warnings[0].Message = ""
		err := envelope.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "warnings.message")
	})
}

func TestSchemaJSON(t *testing.T) {
	schema := audit.SchemaJSON()
	assert.NotEmpty(t, schema)
	assert.Contains(t, string(schema), audit.SchemaID)
	assert.Contains(t, string(schema), `"additionalProperties": false`)
}
