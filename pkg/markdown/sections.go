// Package markdown normalizes free-form markdown bodies into a canonical
// set of named sections. Bodies are split by level-2 headings; each heading
// is resolved against a fixed synonym table, and anything unrecognized is
// folded into the description section rather than dropped.
package markdown

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Section is one of the seven canonical section names a user story may carry.
type Section string

// Canonical section names.
const (
	SectionDescription        Section = "description"
	SectionBusinessValue      Section = "business_value"
	SectionPreconditions      Section = "preconditions"
	SectionAcceptanceCriteria Section = "acceptance_criteria"
	SectionUserGuide          Section = "user_guide"
	SectionConnections        Section = "connections"
	SectionLastEdited         Section = "last_edited"
)

// String returns the string representation of a Section.
func (s Section) String() string {
	return string(s)
}

// Sections returns all canonical section names in document order.
func Sections() []Section {
	return []Section{
		SectionDescription,
		SectionBusinessValue,
		SectionPreconditions,
		SectionAcceptanceCriteria,
		SectionUserGuide,
		SectionConnections,
		SectionLastEdited,
	}
}

// headingSynonyms maps each canonical section to the human-written heading
// phrasings it absorbs. The table is read-only process-wide configuration.
var headingSynonyms = map[Section][]string{
	SectionDescription:        {"description", "overview", "summary"},
	SectionBusinessValue:      {"business value", "value", "why"},
	SectionPreconditions:      {"preconditions", "prerequisites", "setup"},
	SectionAcceptanceCriteria: {"acceptance criteria", "ac", "done criteria"},
	SectionUserGuide:          {"user guide", "how to", "instructions"},
	SectionConnections:        {"connections", "related", "links"},
	SectionLastEdited:         {"last edited", "history", "changes"},
}

// synonymToCanonical is the reverse lookup built from headingSynonyms.
var synonymToCanonical = func() map[string]Section {
	lookup := make(map[string]Section)
	for canonical, synonyms := range headingSynonyms {
		for _, synonym := range synonyms {
			lookup[synonym] = canonical
		}
	}
	return lookup
}()

// lower folds heading text case-insensitively, Unicode-aware.
var lower = cases.Lower(language.Und)
