// Package adapters defines the producer-neutral intermediate representation
// and the Adapter interface implemented by producer-specific detector/parser
// pairs. An adapter maps raw exporter output into Result values the document
// builder consumes; it never renders or persists anything itself.
package adapters

// Adapter is a producer-specific detector and parser pair.
type Adapter interface {
	// Name returns the adapter identifier (e.g., "collector-gh").
	Name() string

	// CanHandle reports whether the raw payload belongs to this adapter's
	// producer. It never fails: malformed or absent identity fields simply
	// mean "not recognized".
	CanHandle(payload map[string]any) bool

	// Parse converts a raw payload into the intermediate representation.
	// Partial results are never returned: a single malformed item aborts
	// the whole parse.
	Parse(payload map[string]any) (*Result, error)
}

// Result is the complete output of one adapter parse.
type Result struct {
	Items    []Item    `json:"items"`
	Metadata Metadata  `json:"metadata"`
	Warnings []Warning `json:"warnings"`
}

// Item is one tracked work item, immutable once parsed.
type Item struct {
	ID         string         `json:"id"` // Stable identifier, "<system>:<repo>#<number>"
	Title      string         `json:"title"`
	State      string         `json:"state"` // Lifecycle state (e.g., "open", "closed")
	Tags       []string       `json:"tags"`
	URL        string         `json:"url"`
	Timestamps ItemTimestamps `json:"timestamps"`
	Body       *string        `json:"body"` // Raw markdown body, absent when the item has none
}

// ItemTimestamps carries the ISO-8601 creation and update instants of an item.
type ItemTimestamps struct {
	Created string `json:"created"`
	Updated string `json:"updated"`
}

// Metadata describes the producer, triggering run, and source of a payload.
type Metadata struct {
	Producer Producer `json:"producer"`
	Run      Run      `json:"run"`
	Source   Source   `json:"source"`

	// OriginalMetadata preserves the raw metadata block verbatim for the
	// audit trail.
	OriginalMetadata map[string]any `json:"original_metadata"`
}

// Producer identifies the tool that generated the input payload.
type Producer struct {
	Name    string  `json:"name"`
	Version string  `json:"version"`
	Build   *string `json:"build"`
}

// Run describes the CI run that triggered the producer, all fields optional.
type Run struct {
	RunID      *string `json:"run_id"`
	RunAttempt *string `json:"run_attempt"`
	Actor      *string `json:"actor"`
	Workflow   *string `json:"workflow"`
	Ref        *string `json:"ref"`
	SHA        *string `json:"sha"`
}

// Source describes where the producer collected its data from.
type Source struct {
	Systems      []string `json:"systems"`
	Repositories []string `json:"repositories"`
	Organization *string  `json:"organization"`
	Enterprise   *string  `json:"enterprise"`
}

// Warning codes emitted by adapter compatibility checks.
const (
	// WarningCodeVersionMismatch flags a producer version outside the
	// confirmed-compatible range.
	WarningCodeVersionMismatch = "VERSION_MISMATCH"

	// WarningCodeInvalidVersion flags a producer version string that does
	// not parse as a semantic version.
	WarningCodeInvalidVersion = "INVALID_VERSION"
)

// Warning is a non-fatal compatibility advisory. Warnings never change
// control flow; they are carried into the audit trail.
type Warning struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Context *string `json:"context"`
}
