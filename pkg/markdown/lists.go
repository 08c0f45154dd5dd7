package markdown

import "strings"

// ExtractLists returns the bullet list items of a markdown fragment, in
// order. Only "-" and "*" markers are recognized; empty items are skipped.
// Downstream renderers use this to turn acceptance-criteria sections into
// structured checklists.
func ExtractLists(markdown string) []string {
	if markdown == "" {
		return []string{}
	}

	items := []string{}
	for _, line := range strings.Split(markdown, "\n") {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "- ") || strings.HasPrefix(stripped, "* ") {
			if item := strings.TrimSpace(stripped[2:]); item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}
