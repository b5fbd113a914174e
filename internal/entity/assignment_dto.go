package entity

import "time"

func (f ExportFormat) IsValid() bool {
	switch f {
	case FormatPDF, FormatMarkdown, FormatText, FormatDOCX:
		return true
	default:
		return false
	}
}

type GenerateAssignmentRequest struct {
	University  string `json:"university"`
	StudentName string `json:"student_name"`
	StudentID   string `json:"student_id"`
	Program     string `json:"program"`
	Subject     string `json:"subject"`
	Instructor  string `json:"instructor"`
	Semester    string `json:"semester"`
	Topic       string `json:"topic"`

	AssignmentType string `json:"assignment_type"`
	Difficulty     string `json:"difficulty"`
	WordCount      string `json:"word_count"`
	QuestionCount  int    `json:"question_count"`

	IncludeReferences         bool `json:"include_references"`
	IncludeExamples           bool `json:"include_examples"`
	IncludeLearningObjectives bool `json:"include_learning_objectives"`
	IncludeRubric             bool `json:"include_rubric"`
	IncludeImages             bool `json:"include_images"`

	ImageStyle string `json:"image_style"`
}

type GenerateAssignmentResponse struct {
	Status     string         `json:"status"`
	Message    string         `json:"message,omitempty"`
	Assignment *AssignmentDTO `json:"assignment,omitempty"`
}

type AssignmentDTO struct {
	ID                  string    `json:"id"`
	Content             string    `json:"content"`
	GenerationTime      float64   `json:"generation_time"`
	WordCount           int       `json:"word_count"`
	CharCount           int       `json:"char_count"`
	IllustratedSections []string  `json:"illustrated_sections,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

type LogoUploadResponse struct {
	Status string `json:"status"`
	Size   int    `json:"size"`
}

type DocumentContextResponse struct {
	Status     string `json:"status"`
	Chars      int    `json:"chars"`
	Summarized bool   `json:"summarized"`
}

type GenerationHealthResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
