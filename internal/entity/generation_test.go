package entity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestClassifyGenerationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want GenerationErrorKind
	}{
		{
			name: "api key marker",
			err:  errors.New("rpc error: API_KEY_INVALID"),
			want: GenerationErrInvalidKey,
		},
		{
			name: "lowercase invalid",
			err:  errors.New("the provided argument is invalid"),
			want: GenerationErrInvalidKey,
		},
		{
			name: "quota",
			err:  errors.New("Quota exceeded for requests"),
			want: GenerationErrQuota,
		},
		{
			name: "resource exhausted",
			err:  errors.New("code RESOURCE_EXHAUSTED: slow down"),
			want: GenerationErrQuota,
		},
		{
			name: "timeout text",
			err:  errors.New("request timeout after 120s"),
			want: GenerationErrTimeout,
		},
		{
			name: "context deadline",
			err:  fmt.Errorf("generate: %w", context.DeadlineExceeded),
			want: GenerationErrTimeout,
		},
		{
			name: "permission",
			err:  errors.New("PERMISSION_DENIED: enable the API"),
			want: GenerationErrPermission,
		},
		{
			name: "unexpected",
			err:  errors.New("connection reset by peer"),
			want: GenerationErrUnexpected,
		},
		{
			name: "invalid beats quota",
			err:  errors.New("invalid request: quota header missing"),
			want: GenerationErrInvalidKey,
		},
		{
			name: "quota beats timeout",
			err:  errors.New("quota check timeout"),
			want: GenerationErrQuota,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyGenerationError(tt.err)
			if got.Kind != tt.want {
				t.Errorf("ClassifyGenerationError(%q).Kind = %s, want %s", tt.err, got.Kind, tt.want)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("classified error does not wrap the original")
			}
			if !strings.HasPrefix(got.UserMessage(), FailureMarker) {
				t.Errorf("UserMessage() = %q, want %q prefix", got.UserMessage(), FailureMarker)
			}
		})
	}
}

func TestGenerationErrorUserMessage(t *testing.T) {
	err := ClassifyGenerationError(errors.New("Quota exceeded"))
	if !strings.Contains(err.UserMessage(), "Quota Exceeded") {
		t.Errorf("UserMessage() = %q, want quota remediation", err.UserMessage())
	}

	unexpected := ClassifyGenerationError(errors.New("something odd"))
	if !strings.Contains(unexpected.UserMessage(), "something odd") {
		t.Errorf("UserMessage() = %q, want original error text", unexpected.UserMessage())
	}
}

func TestAssignmentRequestNormalize(t *testing.T) {
	req := &AssignmentRequest{QuestionCount: 0}
	req.Normalize()

	if req.Type != TypeAssignment {
		t.Errorf("Type = %q, want %q", req.Type, TypeAssignment)
	}
	if req.Difficulty != DifficultyIntermediate {
		t.Errorf("Difficulty = %q, want %q", req.Difficulty, DifficultyIntermediate)
	}
	if req.QuestionCount != DefaultQuestionCount {
		t.Errorf("QuestionCount = %d, want %d", req.QuestionCount, DefaultQuestionCount)
	}

	req.QuestionCount = 99
	req.Normalize()
	if req.QuestionCount != MaxQuestionCount {
		t.Errorf("QuestionCount = %d, want clamp to %d", req.QuestionCount, MaxQuestionCount)
	}
}

func TestCoverFallbacks(t *testing.T) {
	req := &AssignmentRequest{
		University:  "University of Lahore",
		StudentName: "Hashim Ali",
		Instructor:  "  ",
	}
	cover := req.Cover()
	if cover.Instructor != "N/A" {
		t.Errorf("Instructor = %q, want N/A", cover.Instructor)
	}
	if cover.Semester != "N/A" {
		t.Errorf("Semester = %q, want N/A", cover.Semester)
	}
	if cover.University != req.University {
		t.Errorf("University = %q, want %q", cover.University, req.University)
	}
}
