// Package render turns generated assignment text into paginated PDF
// bytes. Rendering is a pure function of its input: the creation date is
// pinned and only core fonts are used, so identical inputs always
// produce identical bytes.
package render

import (
	"bytes"
	"fmt"
	"image/png"
	"sort"
	"strings"
	"time"

	"github.com/ethicallogix/assignment-maker/internal/entity"
	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

const (
	pageWidth  = 8.5
	pageHeight = 11.0

	marginLeft   = 0.9
	marginRight  = 0.9
	marginTop    = 1.2
	marginBottom = 0.8

	labelColWidth = 2.0
	valueColWidth = 4.8
	infoRowHeight = 0.4

	imageWidth   = 5.0
	imageHeight  = 3.0
	imageSpacing = 0.15

	footerTextX  = 7.5
	footerTextY  = 0.55
	footerRuleX1 = 0.9
	footerRuleX2 = 7.6
	footerRuleY  = 0.65

	logoX    = 0.5
	logoY    = 0.2
	logoSize = 0.8

	pointsPerInch = 72.0
)

// pinnedCreationDate keeps PDF metadata constant across renders.
var pinnedCreationDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

var pngOptions = gofpdf.ImageOptions{ImageType: "png"}

type style struct {
	fontStyle string
	size      float64
	lineH     float64
	r, g, b   int
	before    float64
	after     float64
	align     string
}

// Point sizes, colors and spacing per line kind.
var lineStyles = [...]style{
	LineMainHeading: {fontStyle: "B", size: 14, lineH: 16.8, before: 16, after: 10, align: "L"},
	LineSubheading:  {fontStyle: "B", size: 12, lineH: 14.4, r: 10, g: 10, b: 10, before: 12, after: 6, align: "L"},
	LineQuestion:    {fontStyle: "B", size: 11, lineH: 13.2, r: 21, g: 101, b: 192, before: 10, after: 6, align: "L"},
	LineCitation:    {size: 9, lineH: 12, r: 2, g: 2, b: 2, align: "L"},
	LineBody:        {size: 11, lineH: 16, r: 44, g: 62, b: 80, after: 8, align: "J"},
}

// Renderer lays out the cover page and classified body on Letter pages.
type Renderer struct {
	logger *zap.Logger
}

func NewRenderer(logger *zap.Logger) *Renderer {
	return &Renderer{logger: logger}
}

// PDF renders the document. Undecodable section images and logos are
// skipped with a warning; everything else renders, so the only error
// path is serialization itself.
func (r *Renderer) PDF(in *entity.RenderInput) ([]byte, error) {
	pdf := gofpdf.New("P", "in", "Letter", "")
	pdf.SetCreationDate(pinnedCreationDate)
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	imageNames := r.registerImages(pdf, in.Images)
	hasLogo := r.registerLogo(pdf, in.Logo)

	pdf.SetHeaderFunc(func() {
		if hasLogo {
			pdf.ImageOptions("logo", logoX, logoY, logoSize, logoSize, false, pngOptions, 0, "")
		}
	})
	pdf.SetFooterFunc(func() {
		r.pageFooter(pdf)
	})

	pdf.AddPage()
	r.coverPage(pdf, tr, in)

	pdf.AddPage()
	r.bodyPages(pdf, tr, in.Content, imageNames)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// registerImages validates and registers section illustrations up front.
// Keys are visited in sorted order so object numbering inside the PDF
// does not depend on map iteration order.
func (r *Renderer) registerImages(pdf *gofpdf.Fpdf, images entity.SectionImageMap) map[string]string {
	if len(images) == 0 {
		return nil
	}

	keys := make([]string, 0, len(images))
	for key := range images {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	names := make(map[string]string, len(images))
	for i, key := range keys {
		data := images[key]
		if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
			r.logger.Warn("skipping undecodable section image", zap.String("section", key), zap.Error(err))
			continue
		}
		name := fmt.Sprintf("section-%02d", i)
		pdf.RegisterImageOptionsReader(name, pngOptions, bytes.NewReader(data))
		if pdf.Err() {
			r.logger.Warn("section image rejected", zap.String("section", key), zap.String("reason", pdf.Error().Error()))
			pdf.ClearError()
			continue
		}
		names[key] = name
	}
	return names
}

func (r *Renderer) registerLogo(pdf *gofpdf.Fpdf, logo []byte) bool {
	if len(logo) == 0 {
		return false
	}
	if _, err := png.DecodeConfig(bytes.NewReader(logo)); err != nil {
		r.logger.Warn("skipping undecodable logo", zap.Error(err))
		return false
	}
	pdf.RegisterImageOptionsReader("logo", pngOptions, bytes.NewReader(logo))
	if pdf.Err() {
		r.logger.Warn("logo rejected", zap.String("reason", pdf.Error().Error()))
		pdf.ClearError()
		return false
	}
	return true
}

func (r *Renderer) coverPage(pdf *gofpdf.Fpdf, tr func(string) string, in *entity.RenderInput) {
	pdf.Ln(0.4)

	pdf.SetFont("Helvetica", "B", 26)
	pdf.SetTextColor(26, 35, 132)
	pdf.CellFormat(0, 26*1.2/pointsPerInch, tr(strings.ToUpper(in.Cover.University)), "", 1, "C", false, 0, "")
	pdf.Ln(10.0/pointsPerInch + 0.1)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 12*1.2/pointsPerInch, "ACADEMIC ASSIGNMENT", "", 1, "C", false, 0, "")
	pdf.Ln(14.0 / pointsPerInch)
	pdf.CellFormat(0, 12*1.2/pointsPerInch, tr(in.Cover.Subject), "", 1, "C", false, 0, "")
	pdf.Ln(14.0/pointsPerInch + 0.15)

	r.infoTable(pdf, tr, in)

	pdf.Ln(0.3)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(2, 2, 2)
	pdf.CellFormat(0, 12.0/pointsPerInch, strings.Repeat("_", 80), "", 1, "L", false, 0, "")
}

func (r *Renderer) infoTable(pdf *gofpdf.Fpdf, tr func(string) string, in *entity.RenderInput) {
	rows := [][2]string{
		{"Student Name:", in.Cover.StudentName},
		{"Student ID:", in.Cover.StudentID},
		{"Program:", in.Cover.Program},
		{"Instructor:", in.Cover.Instructor},
		{"Semester / Term:", in.Cover.Semester},
		{"Submission Date:", in.SubmissionDate.Format("January 2, 2006")},
	}

	x := (pageWidth - labelColWidth - valueColWidth) / 2
	pdf.SetDrawColor(184, 212, 241)
	pdf.SetLineWidth(0.5 / pointsPerInch)
	pdf.SetFillColor(232, 240, 254)
	pdf.SetTextColor(44, 62, 80)

	for _, row := range rows {
		pdf.SetX(x)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(labelColWidth, infoRowHeight, row[0], "1", 0, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(valueColWidth, infoRowHeight, tr(row[1]), "1", 1, "L", false, 0, "")
	}
}

func (r *Renderer) bodyPages(pdf *gofpdf.Fpdf, tr func(string) string, content string, imageNames map[string]string) {
	cls := &classifier{}
	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		ln := cls.Classify(line)
		r.writeLine(pdf, tr, ln)

		if ln.ImageKey != "" {
			if name, ok := imageNames[ln.ImageKey]; ok {
				r.sectionImage(pdf, name)
			}
		}
	}
}

func (r *Renderer) writeLine(pdf *gofpdf.Fpdf, tr func(string) string, ln Line) {
	s := lineStyles[ln.Kind]
	if s.before > 0 {
		pdf.Ln(s.before / pointsPerInch)
	}
	pdf.SetFont("Helvetica", s.fontStyle, s.size)
	pdf.SetTextColor(s.r, s.g, s.b)
	pdf.MultiCell(0, s.lineH/pointsPerInch, tr(ln.Text), "", s.align, false)
	if s.after > 0 {
		pdf.Ln(s.after / pointsPerInch)
	}
}

func (r *Renderer) sectionImage(pdf *gofpdf.Fpdf, name string) {
	y := pdf.GetY() + imageSpacing
	if y+imageHeight > pageHeight-marginBottom {
		pdf.AddPage()
		y = pdf.GetY() + imageSpacing
	}
	pdf.ImageOptions(name, (pageWidth-imageWidth)/2, y, imageWidth, imageHeight, false, pngOptions, 0, "")
	pdf.SetY(y + imageHeight + imageSpacing)
}

func (r *Renderer) pageFooter(pdf *gofpdf.Fpdf) {
	text := fmt.Sprintf("Page %d", pdf.PageNo())
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(107, 114, 128)
	pdf.Text(footerTextX-pdf.GetStringWidth(text), pageHeight-footerTextY, text)

	pdf.SetDrawColor(209, 213, 219)
	pdf.SetLineWidth(0.5 / pointsPerInch)
	pdf.Line(footerRuleX1, pageHeight-footerRuleY, footerRuleX2, pageHeight-footerRuleY)
}
