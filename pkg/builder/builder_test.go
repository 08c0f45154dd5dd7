package builder_test

import (
	"testing"
	"time"

	"github.com/agentstation/utc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/livingdoc/pkg/adapters"
	"github.com/agentstation/livingdoc/pkg/builder"
	"github.com/agentstation/livingdoc/pkg/errors"
)

func strPtr(s string) *string { return &s }

// fixedClock pins the construction instant so generated_at and trace
// timestamps are deterministic.
func fixedClock() utc.Time {
	return utc.New(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
}

func item(n string) adapters.Item {
	body := "## Description\nBody of " + n
	return adapters.Item{
		ID:    "github:acme/widgets#" + n,
		Title: "Story " + n,
		State: "open",
		Tags:  []string{"feature"},
		URL:   "https://github.com/acme/widgets/issues/" + n,
		Timestamps: adapters.ItemTimestamps{
			Created: "2024-01-02T03:04:05Z",
			Updated: "2024-02-03T04:05:06Z",
		},
		Body: &body,
	}
}

func result(items ...adapters.Item) *adapters.Result {
	return &adapters.Result{
		Items: items,
		Metadata: adapters.Metadata{
			Producer: adapters.Producer{
				Name:    "AbsaOSS/living-doc-collector-gh",
				Version: "1.2.3",
			},
			Run: adapters.Run{
				RunID: strPtr("42"),
				Actor: strPtr("octocat"),
				Ref:   strPtr("refs/heads/main"),
				SHA:   strPtr("abc123"),
			},
			Source: adapters.Source{
				Systems:      []string{"github"},
				Repositories: []string{"acme/widgets", "acme/gadgets"},
			},
			OriginalMetadata: map[string]any{"generator": map[string]any{"name": "x"}},
		},
		Warnings: []adapters.Warning{},
	}
}

func TestBuild(t *testing.T) {
	b := builder.New("collector-gh", builder.WithClock(fixedClock))

	t.Run("selection summary accounts for every item", func(t *testing.T) {
		doc, err := b.Build(result(item("1"), item("2"), item("3"), item("4"), item("5")))
		require.NoError(t, err)
		assert.Equal(t, 5, doc.Meta.SelectionSummary.TotalItems)
		assert.Equal(t, 5, doc.Meta.SelectionSummary.IncludedItems)
		assert.Equal(t, 0, doc.Meta.SelectionSummary.ExcludedItems)
		assert.Len(t, doc.Content.UserStories, 5)
	})

	t.Run("source set prefixed once", func(t *testing.T) {
		r := result(item("1"))
		r.Metadata.Source.Repositories = []string{"acme/widgets", "github:acme/gadgets"}
		doc, err := b.Build(r)
		require.NoError(t, err)
		assert.Equal(t, []string{"github:acme/widgets", "github:acme/gadgets"}, doc.Meta.SourceSet)
	})

	t.Run("title synthesized from first repository", func(t *testing.T) {
		doc, err := b.Build(result(item("1")))
		require.NoError(t, err)
		assert.Equal(t, "Living Documentation - acme/widgets", doc.Meta.DocumentTitle)
	})

	t.Run("title override wins", func(t *testing.T) {
		custom := builder.New("collector-gh",
			builder.WithClock(fixedClock),
			builder.WithDocumentTitle("Release Notes"))
		doc, err := custom.Build(result(item("1")))
		require.NoError(t, err)
		assert.Equal(t, "Release Notes", doc.Meta.DocumentTitle)
	})

	t.Run("version defaults and overrides", func(t *testing.T) {
		doc, err := b.Build(result(item("1")))
		require.NoError(t, err)
		assert.Equal(t, "1.0.0", doc.Meta.DocumentVersion)

		custom := builder.New("collector-gh",
			builder.WithClock(fixedClock),
			builder.WithDocumentVersion("2.3.4"))
		doc, err = custom.Build(result(item("1")))
		require.NoError(t, err)
		assert.Equal(t, "2.3.4", doc.Meta.DocumentVersion)
	})

	t.Run("generated at uses the injected clock", func(t *testing.T) {
		doc, err := b.Build(result(item("1")))
		require.NoError(t, err)
		assert.Equal(t, "2024-06-01T12:00:00Z", doc.Meta.GeneratedAt)
	})

	t.Run("run context present when run id known", func(t *testing.T) {
		doc, err := b.Build(result(item("1")))
		require.NoError(t, err)
		require.NotNil(t, doc.Meta.RunContext)
		assert.Equal(t, "42", *doc.Meta.RunContext.CIRunID)
		assert.Equal(t, "octocat", *doc.Meta.RunContext.TriggeredBy)
		assert.Equal(t, "refs/heads/main", *doc.Meta.RunContext.Branch)
		assert.Equal(t, "abc123", *doc.Meta.RunContext.CommitSHA)
	})

	t.Run("run context omitted without run id", func(t *testing.T) {
		r := result(item("1"))
		r.Metadata.Run = adapters.Run{Actor: strPtr("octocat")}
		doc, err := b.Build(r)
		require.NoError(t, err)
		assert.Nil(t, doc.Meta.RunContext)
	})

	t.Run("story body normalized into sections", func(t *testing.T) {
		body := "## Description\nWhat.\n\n## Acceptance Criteria\n- green\n\n## Custom\nExtra."
		it := item("9")
		it.Body = &body
		doc, err := b.Build(result(it))
		require.NoError(t, err)

		sections := doc.Content.UserStories[0].Sections
		require.NotNil(t, sections.Description)
		assert.Equal(t, "What.\n\n### Custom\nExtra.", *sections.Description)
		require.NotNil(t, sections.AcceptanceCriteria)
		assert.Equal(t, "- green", *sections.AcceptanceCriteria)
		assert.Nil(t, sections.BusinessValue)
	})

	t.Run("nil body yields nil description", func(t *testing.T) {
		it := item("9")
		it.Body = nil
		doc, err := b.Build(result(it))
		require.NoError(t, err)
		assert.Nil(t, doc.Content.UserStories[0].Sections.Description)
	})

	t.Run("nil tags normalized to empty list", func(t *testing.T) {
		it := item("9")
		it.Tags = nil
		doc, err := b.Build(result(it))
		require.NoError(t, err)
		assert.Equal(t, []string{}, doc.Content.UserStories[0].Tags)
	})

	t.Run("no repositories fails validation", func(t *testing.T) {
		r := result(item("1"))
		r.Metadata.Source.Repositories = nil
		_, err := b.Build(r)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrSchemaValidation))
		assert.Contains(t, err.Error(), "source_set")
	})

	t.Run("invalid story aborts the build", func(t *testing.T) {
		it := item("9")
		it.State = ""
		_, err := b.Build(result(it))
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrSchemaValidation))
	})
}

func TestBuildEnvelope(t *testing.T) {
	b := builder.New("collector-gh", builder.WithClock(fixedClock))

	t.Run("mirrors metadata and stamps the trace", func(t *testing.T) {
		r := result(item("1"))
		r.Warnings = []adapters.Warning{{
			Code:    adapters.WarningCodeVersionMismatch,
			Message: "out of range",
			Context: strPtr("metadata.generator.version"),
		}}

		doc, err := b.Build(r)
		require.NoError(t, err)

		envelope := doc.Meta.Audit
		require.NotNil(t, envelope)
		assert.Equal(t, "1.0", envelope.SchemaVersion)
		assert.Equal(t, "AbsaOSS/living-doc-collector-gh", envelope.Producer.Name)
		assert.Equal(t, "1.2.3", envelope.Producer.Version)
		assert.Equal(t, []string{"github"}, envelope.Source.Systems)
		assert.Equal(t, []string{"acme/widgets", "acme/gadgets"}, envelope.Source.Repositories)

		require.Len(t, envelope.Trace, 1)
		step := envelope.Trace[0]
		assert.Equal(t, "normalization", step.Step)
		assert.Equal(t, "living-doc-toolkit", step.Tool)
		assert.Equal(t, "1.0.0", step.ToolVersion)
		require.NotNil(t, step.StartedAt)
		require.NotNil(t, step.FinishedAt)
		assert.Equal(t, *step.StartedAt, *step.FinishedAt)
		assert.Equal(t, doc.Meta.GeneratedAt, *step.StartedAt)

		require.Len(t, step.Warnings, 1)
		assert.Equal(t, "VERSION_MISMATCH", step.Warnings[0].Code)
		assert.Equal(t, "out of range", step.Warnings[0].Message)
	})

	t.Run("original metadata preserved under adapter namespace", func(t *testing.T) {
		doc, err := b.Build(result(item("1")))
		require.NoError(t, err)

		extension, ok := doc.Meta.Audit.Extensions["collector-gh"]
		require.True(t, ok)
		assert.Equal(t, map[string]any{"generator": map[string]any{"name": "x"}},
			extension["original_metadata"])
	})
}
