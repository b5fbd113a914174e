package prompt

import (
	"strings"
	"testing"

	"github.com/ethicallogix/assignment-maker/internal/entity"
)

func baseRequest() *entity.AssignmentRequest {
	req := &entity.AssignmentRequest{
		University:  "University of Lahore",
		StudentName: "Hashim Ali",
		StudentID:   "BSCS-2021-114",
		Program:     "BS Computer Science",
		Subject:     "Software Engineering",
		Topic:       "Impact of microservice architectures on delivery speed",
	}
	req.Normalize()
	return req
}

func TestBuildDeterministic(t *testing.T) {
	req := baseRequest()
	first, _ := Build(req, "")
	second, _ := Build(req, "")
	if first != second {
		t.Fatal("Build() output differs across identical calls")
	}
}

func TestBuildMandatoryHeadings(t *testing.T) {
	text, _ := Build(baseRequest(), "")

	// Line-anchored: the formatting rules mention "## INTRODUCTION" as an
	// inline example, which does not count as a heading.
	for _, heading := range []string{"\n## INTRODUCTION", "\n## MAIN DISCUSSION", "\n## CONCLUSION"} {
		if got := strings.Count(text, heading); got != 1 {
			t.Errorf("prompt contains %q %d times, want exactly once", heading[1:], got)
		}
	}
	if !strings.Contains(text, "Topic: "+baseRequest().Topic) {
		t.Error("prompt does not carry the topic")
	}
}

func TestBuildOptionalBlocks(t *testing.T) {
	blocks := map[string]string{
		"learning objectives": "## LEARNING OBJECTIVES",
		"rubric":              "## EVALUATION RUBRIC",
		"references":          "## REFERENCES",
		"examples":            "Include practical examples",
		"document context":    "DOCUMENT CONTEXT PROVIDED:",
	}

	off, _ := Build(baseRequest(), "")
	for name, marker := range blocks {
		if strings.Contains(off, marker) {
			t.Errorf("disabled %s block leaked marker %q into prompt", name, marker)
		}
	}

	req := baseRequest()
	req.IncludeLearningObjectives = true
	req.IncludeRubric = true
	req.IncludeReferences = true
	req.IncludeExamples = true
	on, meta := Build(req, "background facts")

	for name, marker := range blocks {
		if got := strings.Count(on, marker); got != 1 {
			t.Errorf("enabled %s block: marker %q appears %d times, want once", name, marker, got)
		}
	}
	if !meta.HasDocumentContext {
		t.Error("meta.HasDocumentContext = false, want true")
	}
	if meta.ExamplesInstruction == "" {
		t.Error("meta.ExamplesInstruction empty with examples enabled")
	}
}

func TestBuildWordCountMapping(t *testing.T) {
	tests := []struct {
		pref entity.WordCountPreference
		want string
	}{
		{entity.WordsConcise, "100-150"},
		{entity.WordsStandard, "100-150"},
		{entity.WordsDetailed, "800-1000"},
		{entity.WordCountPreference("Very Detailed writeup please"), "800-1000"},
		{entity.WordCountPreference("anything else"), "100-150"},
	}

	for _, tt := range tests {
		t.Run(string(tt.pref), func(t *testing.T) {
			req := baseRequest()
			req.WordPreference = tt.pref
			text, meta := Build(req, "")

			if meta.WordCountRange != tt.want {
				t.Errorf("WordCountRange = %q, want %q", meta.WordCountRange, tt.want)
			}
			if !strings.Contains(text, "approximately "+tt.want+" words") {
				t.Errorf("prompt missing %q word range", tt.want)
			}
		})
	}
}

func TestBuildContextTruncated(t *testing.T) {
	long := strings.Repeat("a", 5000)
	text, _ := Build(baseRequest(), long)

	start := strings.Index(text, "DOCUMENT CONTEXT PROVIDED:")
	if start < 0 {
		t.Fatal("context block missing")
	}
	if strings.Contains(text, strings.Repeat("a", 3001)) {
		t.Error("context not truncated to 3000 characters")
	}
	if !strings.Contains(text, strings.Repeat("a", 3000)) {
		t.Error("truncated context shorter than 3000 characters")
	}
}

func TestBuildQuestionCountCarried(t *testing.T) {
	req := baseRequest()
	req.QuestionCount = 7
	_, meta := Build(req, "")
	if meta.QuestionCount != 7 {
		t.Errorf("meta.QuestionCount = %d, want 7", meta.QuestionCount)
	}
}
