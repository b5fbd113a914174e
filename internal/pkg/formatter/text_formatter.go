package formatter

import (
	"github.com/ethicallogix/assignment-maker/internal/entity"
)

const (
	textContentType   = "text/plain; charset=utf-8"
	textFileExtension = ".txt"
)

type TextFormatter struct{}

func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

func (tf *TextFormatter) Format(in *entity.RenderInput) ([]byte, error) {
	return []byte(in.Content), nil
}

func (tf *TextFormatter) ContentType() string {
	return textContentType
}

func (tf *TextFormatter) FileExtension() string {
	return textFileExtension
}
