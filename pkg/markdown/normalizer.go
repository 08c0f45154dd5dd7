package markdown

import "strings"

// NormalizeSections parses a raw markdown body into canonical sections.
//
// The body is split by level-2 headings. Recognized headings store their
// trimmed content under the canonical key (last one wins per key within one
// parse). Content recognized as description, content preceding the first
// heading, and unrecognized sections (re-serialized as level-3 sub-heading
// blocks, in encounter order) are merged into the final description, in
// that order, joined with blank lines.
//
// The description key is always present, nil when there is truly nothing
// to report. All other empty sections are omitted.
func NormalizeSections(markdown string) map[Section]*string {
	if markdown == "" {
		return map[Section]*string{SectionDescription: nil}
	}

	result := make(map[Section]*string)

	// Parts destined for the description: pre-heading prose first, then
	// unknown-heading blocks in encounter order.
	var descriptionParts []string

	// Content under a description synonym is held separately so it can be
	// prepended ahead of everything else.
	var knownDescription string

	for _, section := range SplitByHeadings(markdown) {
		content := strings.TrimSpace(section.Content)

		if section.Heading == "" {
			if content != "" {
				descriptionParts = append(descriptionParts, content)
			}
			continue
		}

		if content == "" {
			continue
		}

		canonical, known := synonymToCanonical[NormalizeHeading(section.Heading)]
		switch {
		case known && canonical == SectionDescription:
			knownDescription = content
		case known:
			value := content
			result[canonical] = &value
		default:
			// Unknown headings are never discarded; they become level-3
			// sub-heading blocks inside the description.
			descriptionParts = append(descriptionParts,
				"### "+section.Heading+"\n"+content)
		}
	}

	var finalParts []string
	if knownDescription != "" {
		finalParts = append(finalParts, knownDescription)
	}
	finalParts = append(finalParts, descriptionParts...)

	if len(finalParts) > 0 {
		description := strings.Join(finalParts, "\n\n")
		result[SectionDescription] = &description
	} else {
		result[SectionDescription] = nil
	}

	return result
}

// NormalizeHeading folds heading text for synonym lookup: trimmed and
// lower-cased with Unicode-aware case mapping.
func NormalizeHeading(text string) string {
	return lower.String(strings.TrimSpace(text))
}
