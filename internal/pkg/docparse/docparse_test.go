package docparse

import (
	"errors"
	"testing"

	"github.com/ethicallogix/assignment-maker/internal/entity"
)

func TestExtractText(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		want     string
	}{
		{
			name:     "plain text",
			filename: "notes.txt",
			content:  "First line.\nSecond line.\n",
			want:     "First line.\nSecond line.",
		},
		{
			name:     "markdown verbatim",
			filename: "outline.md",
			content:  "# Heading\n\nSome **bold** prose.",
			want:     "# Heading\n\nSome **bold** prose.",
		},
		{
			name:     "uppercase extension",
			filename: "NOTES.TXT",
			content:  "  padded  ",
			want:     "padded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractText(tt.filename, []byte(tt.content))
			if err != nil {
				t.Fatalf("ExtractText() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractTextUnsupportedExtension(t *testing.T) {
	for _, filename := range []string{"report.pdf", "data.csv", "noext"} {
		_, err := ExtractText(filename, []byte("content"))
		if !errors.Is(err, entity.ErrInvalidExtension) {
			t.Errorf("ExtractText(%q) error = %v, want ErrInvalidExtension", filename, err)
		}
	}
}

func TestExtractTextEmptyDocument(t *testing.T) {
	for _, content := range []string{"", "   \n\t  "} {
		_, err := ExtractText("empty.txt", []byte(content))
		if !errors.Is(err, entity.ErrEmptyDocument) {
			t.Errorf("ExtractText(empty.txt, %q) error = %v, want ErrEmptyDocument", content, err)
		}
	}
}

func TestExtractTextCorruptDOCX(t *testing.T) {
	if _, err := ExtractText("report.docx", []byte("not a zip archive")); err == nil {
		t.Error("ExtractText() on corrupt docx succeeded, want error")
	}
}
