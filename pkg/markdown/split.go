package markdown

import (
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// RawSection is one heading-delimited slice of a markdown body. The section
// preceding the first heading has an empty Heading.
type RawSection struct {
	Heading string
	Content string
}

// splitLevel is the heading depth that delimits sections.
const splitLevel = 2

// SplitByHeadings splits markdown text by top-level ATX headings of depth
// two. Content before the first heading is returned under an empty heading.
// When the same heading text occurs twice, the later content replaces the
// earlier one at its original position.
//
// The split uses the goldmark AST, so headings inside fenced code blocks,
// block quotes, or lists do not delimit sections.
func SplitByHeadings(source string) []RawSection {
	if source == "" {
		return []RawSection{{Heading: "", Content: ""}}
	}

	src := []byte(source)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	type boundary struct {
		heading      string
		lineStart    int
		contentStart int
	}
	var bounds []boundary

	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		heading, ok := node.(*ast.Heading)
		if !ok || heading.Level != splitLevel {
			continue
		}
		lines := heading.Lines()
		if lines.Len() == 0 {
			continue
		}
		first := lines.At(0)
		last := lines.At(lines.Len() - 1)

		lineStart := lineStartBefore(src, first.Start)
		// Only column-zero ATX headings delimit sections; setext and
		// indented headings stay inside the surrounding content.
		if lineStart >= len(src) || src[lineStart] != '#' {
			continue
		}

		bounds = append(bounds, boundary{
			heading:      strings.TrimSpace(string(src[first.Start:last.Stop])),
			lineStart:    lineStart,
			contentStart: nextLineStart(src, last.Stop),
		})
	}

	if len(bounds) == 0 {
		return []RawSection{{Heading: "", Content: source}}
	}

	var sections []RawSection
	index := make(map[string]int)

	appendSection := func(heading, content string) {
		if i, ok := index[heading]; ok {
			sections[i].Content = content
			return
		}
		index[heading] = len(sections)
		sections = append(sections, RawSection{Heading: heading, Content: content})
	}

	if bounds[0].lineStart > 0 {
		appendSection("", trimTrailingSpace(source[:bounds[0].lineStart]))
	}

	for i, b := range bounds {
		end := len(src)
		if i+1 < len(bounds) {
			end = bounds[i+1].lineStart
		}
		content := ""
		if b.contentStart < end {
			content = trimTrailingSpace(string(src[b.contentStart:end]))
		}
		appendSection(b.heading, content)
	}

	return sections
}

// lineStartBefore returns the offset of the first byte of the line that
// contains offset.
func lineStartBefore(src []byte, offset int) int {
	if offset > len(src) {
		offset = len(src)
	}
	for i := offset - 1; i >= 0; i-- {
		if src[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

// nextLineStart returns the offset just past the newline that terminates
// the line containing offset, or len(src) when the text ends first.
func nextLineStart(src []byte, offset int) int {
	for i := offset; i < len(src); i++ {
		if src[i] == '\n' {
			return i + 1
		}
	}
	return len(src)
}

func trimTrailingSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
