package render

import (
	"regexp"
	"strings"
)

// LineKind tags a content line with the visual treatment it receives.
type LineKind int

const (
	LineMainHeading LineKind = iota
	LineSubheading
	LineQuestion
	LineCitation
	LineBody
)

// Line is one classified content line ready for the styled writer.
// ImageKey is set only for level-2 headings; it is the uppercased
// heading text used to look up a section illustration.
type Line struct {
	Kind     LineKind
	Text     string
	ImageKey string
}

var (
	referencesStartRe = regexp.MustCompile(`^##\s*REFERENCES`)
	subheadingLabelRe = regexp.MustCompile(`(?i)^Subheading:\s*`)
	questionPrefixRe  = regexp.MustCompile(`(?i)^\*\*Question:\*\*`)
	answerPrefixRe    = regexp.MustCompile(`(?i)^\*\*Answer:\*\*`)
	boldSectionRe     = regexp.MustCompile(`^(INTRODUCTION|LEARNING OBJECTIVES|EVALUATION RUBRIC|REFERENCES|ASSIGNMENT BODY|CONCLUSION)[*:]`)
	plainSectionRe    = regexp.MustCompile(`(?i)^(INTRODUCTION:|LEARNING OBJECTIVES:|EVALUATION RUBRIC:|REFERENCES:|ASSIGNMENT BODY:|CONCLUSION:)`)
	numberedQRe       = regexp.MustCompile(`^Q\d+[.)]`)
	numberedARe       = regexp.MustCompile(`(?i)^Answer\s*\d+:`)
	citationRe        = regexp.MustCompile(`^\d+\.\s`)
)

// classifier assigns each non-blank line to exactly one rendering
// category. Rules run in priority order and the first match wins. It is
// stateful: once the REFERENCES heading has been seen, numbered lines
// render in the citation style.
type classifier struct {
	inReferences bool
}

// Classify tags one trimmed, non-blank line. Emphasis markers are
// stripped from the displayed text except where prefix normalization
// already consumes them.
func (c *classifier) Classify(line string) Line {
	clean := strings.ReplaceAll(line, "**", "")

	if referencesStartRe.MatchString(strings.ToUpper(clean)) {
		c.inReferences = true
	}

	switch {
	case strings.HasPrefix(line, "## "):
		text := strings.ToUpper(strings.ReplaceAll(clean, "## ", ""))
		return Line{Kind: LineMainHeading, Text: text, ImageKey: text}

	case strings.HasPrefix(line, "### "):
		return Line{Kind: LineSubheading, Text: strings.ReplaceAll(clean, "### ", "")}

	case subheadingLabelRe.MatchString(clean):
		return Line{Kind: LineSubheading, Text: strings.TrimSpace(subheadingLabelRe.ReplaceAllString(clean, ""))}

	case questionPrefixRe.MatchString(line):
		return Line{Kind: LineQuestion, Text: questionPrefixRe.ReplaceAllString(line, "Question:")}

	case answerPrefixRe.MatchString(line):
		return Line{Kind: LineQuestion, Text: answerPrefixRe.ReplaceAllString(line, "Answer:")}

	case boldSectionRe.MatchString(strings.ToUpper(clean)):
		return Line{Kind: LineMainHeading, Text: strings.ToUpper(strings.TrimSpace(strings.ReplaceAll(clean, ":", "")))}

	case plainSectionRe.MatchString(clean):
		return Line{Kind: LineMainHeading, Text: strings.ToUpper(clean)}

	case numberedQRe.MatchString(clean):
		return Line{Kind: LineQuestion, Text: clean}

	case numberedARe.MatchString(clean):
		return Line{Kind: LineQuestion, Text: clean}

	case c.inReferences && citationRe.MatchString(clean):
		return Line{Kind: LineCitation, Text: clean}

	default:
		return Line{Kind: LineBody, Text: clean}
	}
}
