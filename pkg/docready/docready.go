// Package docready defines the Canonical Document v1: the schema-validated,
// document-ready artifact the normalization pipeline produces for
// downstream rendering. Construction is the validation gate; records reject
// unknown fields on decode and enforce their field constraints via
// Validate.
package docready

import (
	"github.com/agentstation/livingdoc/pkg/audit"
	"github.com/agentstation/livingdoc/pkg/errors"
)

// SchemaVersion is the fixed Canonical Document schema version literal.
// Any other value is a validation failure, not a warning.
const SchemaVersion = "1.0"

// Document is the Canonical Document v1 root entity. It is constructed
// once per pipeline run and immutable after construction.
type Document struct {
	SchemaVersion string  `json:"schema_version"`
	Meta          Meta    `json:"meta"`
	Content       Content `json:"content"`
}

// Meta is the document metadata block.
type Meta struct {
	DocumentTitle    string           `json:"document_title"`   // 1-200 chars
	DocumentVersion  string           `json:"document_version"` // 1-50 chars
	GeneratedAt      string           `json:"generated_at"`     // ISO 8601 UTC, nondeterministic
	SourceSet        []string         `json:"source_set"`       // Non-empty
	SelectionSummary SelectionSummary `json:"selection_summary"`
	RunContext       *RunContext      `json:"run_context"` // Present only when a run ID was known
	Audit            *audit.Envelope  `json:"audit"`
}

// SelectionSummary accounts for every parsed item.
type SelectionSummary struct {
	TotalItems    int `json:"total_items"`
	IncludedItems int `json:"included_items"`
	ExcludedItems int `json:"excluded_items"`
}

// RunContext carries the CI run identity the input was produced under.
type RunContext struct {
	CIRunID     *string `json:"ci_run_id"`
	TriggeredBy *string `json:"triggered_by"`
	Branch      *string `json:"branch"`
	CommitSHA   *string `json:"commit_sha"`
}

// Content is the document content block.
type Content struct {
	UserStories []UserStory `json:"user_stories"`
}

// UserStory combines an item's identity fields with its canonical sections.
type UserStory struct {
	ID         string     `json:"id"` // e.g. "github:owner/repo#123"
	Title      string     `json:"title"`
	State      string     `json:"state"`
	Tags       []string   `json:"tags"`
	URL        string     `json:"url"`
	Timestamps Timestamps `json:"timestamps"`
	Sections   Sections   `json:"sections"`
}

// Timestamps carries the ISO-8601 creation and update instants of a story.
type Timestamps struct {
	Created string `json:"created"`
	Updated string `json:"updated"`
}

// Sections is the canonical section set: seven optional markdown
// fragments. Description is always populated, possibly with an explicit
// null; the others are null when the body had no matching heading.
type Sections struct {
	Description        *string `json:"description"`
	BusinessValue      *string `json:"business_value"`
	Preconditions      *string `json:"preconditions"`
	AcceptanceCriteria *string `json:"acceptance_criteria"`
	UserGuide          *string `json:"user_guide"`
	Connections        *string `json:"connections"`
	LastEdited         *string `json:"last_edited"`
}

const schemaName = "docready.v1"

// Validate checks the document against the closed-schema field constraints,
// cascading through every nested record.
func (d *Document) Validate() error {
	if d.SchemaVersion != SchemaVersion {
		return errors.NewSchemaValidationError(schemaName, "schema_version",
			"schema_version must be \""+SchemaVersion+"\"")
	}
	if err := d.Meta.Validate(); err != nil {
		return err
	}
	return d.Content.Validate()
}

// Validate checks metadata field constraints.
func (m *Meta) Validate() error {
	if n := len(m.DocumentTitle); n < 1 || n > 200 {
		return errors.NewSchemaValidationError(schemaName, "meta.document_title",
			"document_title must be 1-200 chars")
	}
	if n := len(m.DocumentVersion); n < 1 || n > 50 {
		return errors.NewSchemaValidationError(schemaName, "meta.document_version",
			"document_version must be 1-50 chars")
	}
	if m.GeneratedAt == "" {
		return errors.NewSchemaValidationError(schemaName, "meta.generated_at",
			"generated_at must be non-empty")
	}
	if len(m.SourceSet) == 0 {
		return errors.NewSchemaValidationError(schemaName, "meta.source_set",
			"source_set must be non-empty")
	}
	if err := m.SelectionSummary.Validate(); err != nil {
		return err
	}
	if m.Audit != nil {
		if err := m.Audit.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks selection summary invariants: counts are non-negative
// and every item is accounted for.
func (s *SelectionSummary) Validate() error {
	if s.TotalItems < 0 || s.IncludedItems < 0 || s.ExcludedItems < 0 {
		return errors.NewSchemaValidationError(schemaName, "meta.selection_summary",
			"item counts must be >= 0")
	}
	if s.TotalItems != s.IncludedItems+s.ExcludedItems {
		return errors.NewSchemaValidationError(schemaName, "meta.selection_summary",
			"total_items must equal included_items + excluded_items")
	}
	return nil
}

// Validate checks content field constraints.
func (c *Content) Validate() error {
	for i := range c.UserStories {
		if err := c.UserStories[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks user story field constraints.
func (u *UserStory) Validate() error {
	if u.ID == "" {
		return errors.NewSchemaValidationError(schemaName, "user_stories.id",
			"id must be non-empty")
	}
	if n := len(u.Title); n < 1 || n > 500 {
		return errors.NewSchemaValidationError(schemaName, "user_stories.title",
			"title must be 1-500 chars")
	}
	if u.State == "" {
		return errors.NewSchemaValidationError(schemaName, "user_stories.state",
			"state must be non-empty")
	}
	if u.Tags == nil {
		return errors.NewSchemaValidationError(schemaName, "user_stories.tags",
			"tags must be a list")
	}
	if u.URL == "" {
		return errors.NewSchemaValidationError(schemaName, "user_stories.url",
			"url must be non-empty")
	}
	if u.Timestamps.Created == "" || u.Timestamps.Updated == "" {
		return errors.NewSchemaValidationError(schemaName, "user_stories.timestamps",
			"created and updated must be non-empty")
	}
	return nil
}
