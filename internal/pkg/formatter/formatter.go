package formatter

import (
	"fmt"

	"github.com/ethicallogix/assignment-maker/internal/entity"
)

// Renderer produces the paginated PDF representation of a document.
type Renderer interface {
	PDF(in *entity.RenderInput) ([]byte, error)
}

// Formatter serializes a generated assignment into one export format.
type Formatter interface {
	Format(in *entity.RenderInput) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct {
	renderer Renderer
}

func NewFactory(renderer Renderer) *Factory {
	return &Factory{renderer: renderer}
}

func (f *Factory) Create(format entity.ExportFormat) (Formatter, error) {
	switch format {
	case entity.FormatPDF:
		return NewPDFFormatter(f.renderer), nil
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatText:
		return NewTextFormatter(), nil
	case entity.FormatDOCX:
		return NewDOCXFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: %s", entity.ErrUnknownFormat, format)
	}
}
