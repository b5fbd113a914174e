package entity

import (
	"strings"
	"time"
)

// AssignmentType is the kind of academic document to produce.
type AssignmentType string

const (
	TypeAssignment       AssignmentType = "Assignment"
	TypeResearchPaper    AssignmentType = "Research Paper"
	TypeProblemSolving   AssignmentType = "Problem Solving"
	TypeEssay            AssignmentType = "Essay"
	TypeCaseStudy        AssignmentType = "Case Study"
	TypeTechnicalReport  AssignmentType = "Technical Report"
	TypeLiteratureReview AssignmentType = "Literature Review"
	TypeProjectProposal  AssignmentType = "Project Proposal"
)

// Difficulty is the target student level.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
	DifficultyExpert       Difficulty = "Expert"
)

// WordCountPreference is a free-form answer-length label. The prompt
// builder matches it by substring ("Concise", "Detailed"), so the
// human-readable option strings pass through unchanged.
type WordCountPreference string

const (
	WordsConcise  WordCountPreference = "Concise (200-300 words)"
	WordsStandard WordCountPreference = "Standard (400-600 words)"
	WordsDetailed WordCountPreference = "Detailed (800-1000 words)"
)

// ImageStyle selects the illustration rendering style.
type ImageStyle string

const (
	StyleEducationalDiagram ImageStyle = "educational-diagram"
	StyleRealistic          ImageStyle = "realistic"
	StyleSketch             ImageStyle = "sketch"
	StyleDigitalArt         ImageStyle = "digital-art"
)

// ExportFormat names a downloadable artifact type.
type ExportFormat string

const (
	FormatPDF      ExportFormat = "pdf"
	FormatMarkdown ExportFormat = "md"
	FormatText     ExportFormat = "txt"
	FormatDOCX     ExportFormat = "docx"
)

const (
	MinQuestionCount     = 1
	MaxQuestionCount     = 10
	DefaultQuestionCount = 3
)

// AssignmentRequest carries everything needed to generate one assignment.
// Required-field minimums are enforced by the validator, not here.
type AssignmentRequest struct {
	University  string
	StudentName string
	StudentID   string
	Program     string
	Subject     string
	Instructor  string
	Semester    string
	Topic       string

	Type           AssignmentType
	Difficulty     Difficulty
	WordPreference WordCountPreference
	QuestionCount  int

	IncludeReferences         bool
	IncludeExamples           bool
	IncludeLearningObjectives bool
	IncludeRubric             bool
	IncludeImages             bool

	ImageStyle ImageStyle
}

// Normalize fills unset enumerations and clamps the question count.
func (r *AssignmentRequest) Normalize() {
	if r.Type == "" {
		r.Type = TypeAssignment
	}
	if r.Difficulty == "" {
		r.Difficulty = DifficultyIntermediate
	}
	if r.WordPreference == "" {
		r.WordPreference = WordsStandard
	}
	if r.ImageStyle == "" {
		r.ImageStyle = StyleEducationalDiagram
	}
	if r.QuestionCount < MinQuestionCount {
		r.QuestionCount = DefaultQuestionCount
	}
	if r.QuestionCount > MaxQuestionCount {
		r.QuestionCount = MaxQuestionCount
	}
}

// Cover projects the request fields shown on the PDF cover page.
// Optional fields fall back to "N/A" like the submitted form did.
func (r *AssignmentRequest) Cover() CoverInfo {
	instructor := strings.TrimSpace(r.Instructor)
	if instructor == "" {
		instructor = "N/A"
	}
	semester := strings.TrimSpace(r.Semester)
	if semester == "" {
		semester = "N/A"
	}
	return CoverInfo{
		University:  r.University,
		StudentName: r.StudentName,
		StudentID:   r.StudentID,
		Program:     r.Program,
		Subject:     r.Subject,
		Instructor:  instructor,
		Semester:    semester,
	}
}

// CoverInfo is the student metadata rendered on the cover page.
type CoverInfo struct {
	University  string
	StudentName string
	StudentID   string
	Program     string
	Subject     string
	Instructor  string
	Semester    string
}

// Section is a titled span of generated text bounded by level-2 headings.
// Body is the space-joined concatenation of the section's lines: each
// contributing line appends itself plus a single trailing space.
type Section struct {
	Title string
	Body  string
}

// SectionImageMap maps an uppercased section title to PNG bytes.
type SectionImageMap map[string][]byte

// GeneratedDocument is the text produced by one successful generation
// call. Immutable once created; exports re-read it any number of times.
type GeneratedDocument struct {
	ID             string
	Content        string
	GenerationTime float64
	WordCount      int
	CharCount      int
	CreatedAt      time.Time
}

// GeneratedAssignment bundles the request snapshot with its document and
// per-section illustrations. Application state holds at most one of these
// and replaces it wholesale on the next successful generation.
type GeneratedAssignment struct {
	Request  AssignmentRequest
	Document GeneratedDocument
	Images   SectionImageMap
}

// RenderInput is the full tuple the document renderer (and the export
// formatters) transform. Rendering is a pure function of this value, so
// identical inputs always produce identical bytes.
type RenderInput struct {
	Cover             CoverInfo
	Content           string
	IncludeReferences bool
	Images            SectionImageMap
	Logo              []byte
	SubmissionDate    time.Time
}
