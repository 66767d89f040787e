// Package export renders notes in formats meant for other tools.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/matsen/nk/internal/note"
)

// ToMarkdown renders one note as a Markdown section.
func ToMarkdown(n note.Note) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("## Note %d\n\n", n.ID))

	if len(n.Tags) > 0 {
		tags := make([]string, len(n.Tags))
		for i, t := range n.Tags {
			tags[i] = "`" + escapeCode(t) + "`"
		}
		b.WriteString(fmt.Sprintf("- Tags: %s\n", strings.Join(tags, " ")))
	}
	if !n.CreatedAt.IsZero() {
		b.WriteString(fmt.Sprintf("- Created: %s\n", n.CreatedAt.UTC().Format(time.RFC3339)))
	}
	if !n.UpdatedAt.IsZero() && !n.UpdatedAt.Equal(n.CreatedAt) {
		b.WriteString(fmt.Sprintf("- Updated: %s\n", n.UpdatedAt.UTC().Format(time.RFC3339)))
	}
	if len(n.Tags) > 0 || !n.CreatedAt.IsZero() {
		b.WriteString("\n")
	}

	b.WriteString(escapeHeadings(strings.TrimSpace(n.Content)))
	b.WriteString("\n")

	return b.String()
}

// ToMarkdownList renders notes as one Markdown document under title.
func ToMarkdownList(title string, notes []note.Note) string {
	var b strings.Builder
	if title != "" {
		b.WriteString("# " + title + "\n\n")
	}
	for i, n := range notes {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(ToMarkdown(n))
	}
	return b.String()
}

// escapeCode makes s safe inside a single-backtick code span.
func escapeCode(s string) string {
	return strings.ReplaceAll(s, "`", "'")
}

// escapeHeadings keeps content lines starting with # from becoming headings.
func escapeHeadings(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "#") {
			lines[i] = `\` + line
		}
	}
	return strings.Join(lines, "\n")
}
