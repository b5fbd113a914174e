// Package sections splits generated markdown-like text into the titled
// spans the illustration pipeline works on.
package sections

import (
	"strings"

	"github.com/ethicallogix/assignment-maker/internal/entity"
)

const headingMarker = "## "

// Extract walks the text line by line. A level-2 heading opens a new
// section whose title is the heading text with emphasis stripped. A
// heading whose title mentions REFERENCE closes the current section
// without opening one, so reference lists never reach the illustrator.
// Every other non-blank line is appended to the open section followed
// by a single space. Lines before the first heading are dropped.
func Extract(text string) []entity.Section {
	var secs []entity.Section
	current := -1

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, headingMarker) {
			title := strings.TrimSpace(strings.ReplaceAll(line[len(headingMarker):], "**", ""))
			if strings.Contains(strings.ToUpper(title), "REFERENCE") {
				current = -1
				continue
			}
			secs = append(secs, entity.Section{Title: title})
			current = len(secs) - 1
			continue
		}

		if current >= 0 {
			secs[current].Body += line + " "
		}
	}

	return secs
}
