package formatter

import (
	"github.com/ethicallogix/assignment-maker/internal/entity"
)

const (
	pdfContentType   = "application/pdf"
	pdfFileExtension = ".pdf"
)

type PDFFormatter struct {
	renderer Renderer
}

func NewPDFFormatter(renderer Renderer) *PDFFormatter {
	return &PDFFormatter{renderer: renderer}
}

func (pf *PDFFormatter) Format(in *entity.RenderInput) ([]byte, error) {
	return pf.renderer.PDF(in)
}

func (pf *PDFFormatter) ContentType() string {
	return pdfContentType
}

func (pf *PDFFormatter) FileExtension() string {
	return pdfFileExtension
}
