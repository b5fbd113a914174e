// Package docparse extracts plain text from uploaded reference
// documents so it can be spliced into generation prompts.
package docparse

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ethicallogix/assignment-maker/internal/entity"
	"github.com/unidoc/unioffice/document"
)

// ExtractText reads the uploaded file by extension. txt and md files are
// taken verbatim; docx files are flattened paragraph by paragraph.
func ExtractText(filename string, content []byte) (string, error) {
	var (
		text string
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".txt", ".md":
		text = string(content)
	case ".docx":
		text, err = extractDOCX(content)
		if err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("%w: %q", entity.ErrInvalidExtension, ext)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", entity.ErrEmptyDocument
	}
	return text, nil
}

func extractDOCX(content []byte) (string, error) {
	doc, err := document.Read(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("read docx: %w", err)
	}
	defer doc.Close()

	var lines []string
	for _, par := range doc.Paragraphs() {
		var sb strings.Builder
		for _, run := range par.Runs() {
			sb.WriteString(run.Text())
		}
		if line := strings.TrimSpace(sb.String()); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}
