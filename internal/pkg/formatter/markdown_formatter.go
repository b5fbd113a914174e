package formatter

import (
	"github.com/ethicallogix/assignment-maker/internal/entity"
)

const (
	markdownContentType   = "text/markdown; charset=utf-8"
	markdownFileExtension = ".md"
)

type MarkdownFormatter struct{}

func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format returns the generated text untouched. The model already emits
// markdown, so the export is the document itself.
func (mf *MarkdownFormatter) Format(in *entity.RenderInput) ([]byte, error) {
	return []byte(in.Content), nil
}

func (mf *MarkdownFormatter) ContentType() string {
	return markdownContentType
}

func (mf *MarkdownFormatter) FileExtension() string {
	return markdownFileExtension
}
