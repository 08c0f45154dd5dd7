// Package builder assembles the Canonical Document from an adapter's
// intermediate representation: it normalizes each item's markdown body into
// canonical sections, resolves document identity (title, version, source
// set), and attaches the audit envelope. Construction is where validation
// happens; the returned document is already fully validated.
package builder

import (
	"strings"
	"time"

	"github.com/agentstation/utc"

	"github.com/agentstation/livingdoc/pkg/adapters"
	"github.com/agentstation/livingdoc/pkg/docready"
	"github.com/agentstation/livingdoc/pkg/markdown"
)

const (
	// sourcePrefix tags source-set entries with the originating system.
	sourcePrefix = "github:"

	// genericTitle is used when no override is supplied and no repository
	// is known.
	genericTitle = "Living Documentation"

	// defaultDocumentVersion is used when no override is supplied.
	defaultDocumentVersion = "1.0.0"
)

// Clock supplies the construction instant. Injectable so tests can pin the
// only nondeterministic field in the pipeline.
type Clock func() utc.Time

// Builder assembles Canonical Documents for one adapter.
type Builder struct {
	adapter string
	clock   Clock
	title   string
	version string
}

// New creates a Builder for the named adapter.
func New(adapter string, opts ...Option) *Builder {
	b := &Builder{
		adapter: adapter,
		clock:   utc.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build assembles a fully-validated Canonical Document from an adapter
// result. All parsed items are included; nothing is filtered.
func (b *Builder) Build(result *adapters.Result) (*docready.Document, error) {
	stories := make([]docready.UserStory, 0, len(result.Items))
	for i := range result.Items {
		story, err := b.buildStory(&result.Items[i])
		if err != nil {
			return nil, err
		}
		stories = append(stories, story)
	}

	total := len(result.Items)
	summary := docready.SelectionSummary{
		TotalItems:    total,
		IncludedItems: total,
		ExcludedItems: 0,
	}

	sourceSet := buildSourceSet(result.Metadata.Source.Repositories)

	now := b.clock()
	envelope, err := b.buildEnvelope(result, now)
	if err != nil {
		return nil, err
	}

	doc := &docready.Document{
		SchemaVersion: docready.SchemaVersion,
		Meta: docready.Meta{
			DocumentTitle:    b.resolveTitle(sourceSet),
			DocumentVersion:  b.resolveVersion(),
			GeneratedAt:      now.Format(time.RFC3339),
			SourceSet:        sourceSet,
			SelectionSummary: summary,
			RunContext:       buildRunContext(result.Metadata.Run),
			Audit:            envelope,
		},
		Content: docready.Content{UserStories: stories},
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// buildStory normalizes one item's body and assembles its canonical record.
func (b *Builder) buildStory(item *adapters.Item) (docready.UserStory, error) {
	body := ""
	if item.Body != nil {
		body = *item.Body
	}
	normalized := markdown.NormalizeSections(body)

	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}

	story := docready.UserStory{
		ID:    item.ID,
		Title: item.Title,
		State: item.State,
		Tags:  tags,
		URL:   item.URL,
		Timestamps: docready.Timestamps{
			Created: item.Timestamps.Created,
			Updated: item.Timestamps.Updated,
		},
		Sections: docready.Sections{
			Description:        normalized[markdown.SectionDescription],
			BusinessValue:      normalized[markdown.SectionBusinessValue],
			Preconditions:      normalized[markdown.SectionPreconditions],
			AcceptanceCriteria: normalized[markdown.SectionAcceptanceCriteria],
			UserGuide:          normalized[markdown.SectionUserGuide],
			Connections:        normalized[markdown.SectionConnections],
			LastEdited:         normalized[markdown.SectionLastEdited],
		},
	}

	if err := story.Validate(); err != nil {
		return docready.UserStory{}, err
	}
	return story, nil
}

// buildSourceSet prefixes each declared repository with the system tag
// unless already prefixed.
func buildSourceSet(repositories []string) []string {
	sourceSet := make([]string, 0, len(repositories))
	for _, repo := range repositories {
		if strings.HasPrefix(repo, sourcePrefix) {
			sourceSet = append(sourceSet, repo)
		} else {
			sourceSet = append(sourceSet, sourcePrefix+repo)
		}
	}
	return sourceSet
}

// resolveTitle applies the caller override, then synthesizes a title from
// the first source-set entry, then falls back to the generic title.
func (b *Builder) resolveTitle(sourceSet []string) string {
	if b.title != "" {
		return b.title
	}
	if len(sourceSet) > 0 {
		firstRepo := strings.TrimPrefix(sourceSet[0], sourcePrefix)
		return genericTitle + " - " + firstRepo
	}
	return genericTitle
}

func (b *Builder) resolveVersion() string {
	if b.version != "" {
		return b.version
	}
	return defaultDocumentVersion
}

// buildRunContext populates the run context only when a run identifier is
// present in the metadata.
func buildRunContext(run adapters.Run) *docready.RunContext {
	if run.RunID == nil || *run.RunID == "" {
		return nil
	}
	return &docready.RunContext{
		CIRunID:     run.RunID,
		TriggeredBy: run.Actor,
		Branch:      run.Ref,
		CommitSHA:   run.SHA,
	}
}
