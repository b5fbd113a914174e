package formatter

import (
	"bytes"
	"strings"

	"github.com/ethicallogix/assignment-maker/internal/entity"
	"github.com/unidoc/unioffice/document"
)

const (
	docxContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	docxFileExtension = ".docx"
)

type DOCXFormatter struct{}

func NewDOCXFormatter() *DOCXFormatter {
	return &DOCXFormatter{}
}

func (df *DOCXFormatter) Format(in *entity.RenderInput) ([]byte, error) {
	doc := document.New()
	defer doc.Close()

	titlePar := doc.AddParagraph()
	titlePar.SetStyle("Heading1")
	titlePar.AddRun().AddText(strings.ToUpper(in.Cover.University))

	subjectPar := doc.AddParagraph()
	subjectPar.SetStyle("Heading2")
	subjectPar.AddRun().AddText(in.Cover.Subject)

	coverRows := [][2]string{
		{"Student Name", in.Cover.StudentName},
		{"Student ID", in.Cover.StudentID},
		{"Program", in.Cover.Program},
		{"Instructor", in.Cover.Instructor},
		{"Semester / Term", in.Cover.Semester},
		{"Submission Date", in.SubmissionDate.Format("January 2, 2006")},
	}
	for _, row := range coverRows {
		par := doc.AddParagraph()
		par.AddRun().AddText(row[0] + ": " + row[1])
	}

	doc.AddParagraph()

	for _, raw := range strings.Split(in.Content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		par := doc.AddParagraph()
		switch {
		case strings.HasPrefix(line, "## "):
			par.SetStyle("Heading1")
			par.AddRun().AddText(stripEmphasis(strings.TrimPrefix(line, "## ")))
		case strings.HasPrefix(line, "### "):
			par.SetStyle("Heading2")
			par.AddRun().AddText(stripEmphasis(strings.TrimPrefix(line, "### ")))
		default:
			par.AddRun().AddText(stripEmphasis(line))
		}
	}

	var buf bytes.Buffer
	if err := doc.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func stripEmphasis(s string) string {
	return strings.ReplaceAll(s, "**", "")
}

func (df *DOCXFormatter) ContentType() string {
	return docxContentType
}

func (df *DOCXFormatter) FileExtension() string {
	return docxFileExtension
}
