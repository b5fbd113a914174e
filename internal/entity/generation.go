package entity

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// FailureMarker prefixes every user-facing generation failure message.
// Clients can test for it instead of parsing the message body.
const FailureMarker = "❌"

// GenerationResult is the raw text produced by one model call together
// with the wall-clock seconds the call took.
type GenerationResult struct {
	Text    string
	Elapsed float64
}

// GenerationErrorKind classifies why a model call failed.
type GenerationErrorKind string

const (
	GenerationErrInvalidKey GenerationErrorKind = "invalid-credential"
	GenerationErrQuota      GenerationErrorKind = "quota-exhausted"
	GenerationErrTimeout    GenerationErrorKind = "timeout"
	GenerationErrPermission GenerationErrorKind = "permission-denied"
	GenerationErrUnexpected GenerationErrorKind = "unexpected"
)

// GenerationError wraps a text-generation failure with its classified
// kind. The kind selects the remediation message shown to the user.
type GenerationError struct {
	Kind GenerationErrorKind
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed (%s): %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// UserMessage renders the remediation text for this failure kind.
func (e *GenerationError) UserMessage() string {
	switch e.Kind {
	case GenerationErrInvalidKey:
		return FailureMarker + " **API Key Error**: Your API key is invalid.\n\n**Solution:** Get your key at: https://makersuite.google.com/app/apikey"
	case GenerationErrQuota:
		return FailureMarker + " **Quota Exceeded**: You've reached your API usage limits.\n\n**Solution:** Check your quota at: https://console.cloud.google.com/"
	case GenerationErrTimeout:
		return FailureMarker + " **Timeout Error**: Request took too long.\n\n**Solution:** Try reducing word count or number of questions."
	case GenerationErrPermission:
		return FailureMarker + " **Permission Error**: API key doesn't have permission to use this model.\n\n**Solution:** Enable the Generative AI API in Google Cloud Console."
	default:
		return fmt.Sprintf("%s **Unexpected Error**: %v", FailureMarker, e.Err)
	}
}

// ClassifyGenerationError assigns a failure kind by inspecting the error
// text. Checks run in priority order and the first match wins.
func ClassifyGenerationError(err error) *GenerationError {
	msg := err.Error()
	lower := strings.ToLower(msg)

	kind := GenerationErrUnexpected
	switch {
	case strings.Contains(msg, "API_KEY_INVALID") || strings.Contains(lower, "invalid"):
		kind = GenerationErrInvalidKey
	case strings.Contains(lower, "quota") || strings.Contains(lower, "resource_exhausted"):
		kind = GenerationErrQuota
	case strings.Contains(lower, "timeout") || errors.Is(err, context.DeadlineExceeded):
		kind = GenerationErrTimeout
	case strings.Contains(msg, "PERMISSION_DENIED"):
		kind = GenerationErrPermission
	}
	return &GenerationError{Kind: kind, Err: err}
}

// GenerationOutcome is the value result of one generation attempt.
// Validation problems and classified service failures travel here as
// data; the error return of the usecase is reserved for internal faults.
type GenerationOutcome struct {
	ValidationErrors []string
	Failed           bool
	Message          string
	Assignment       *GeneratedAssignment
}

// ConnectionStatus reports a generation service health probe.
type ConnectionStatus struct {
	OK      bool
	Message string
}

// ExportArtifact is a rendered download ready to be written out.
type ExportArtifact struct {
	Data        []byte
	ContentType string
	Filename    string
}

// DocumentContextResult summarizes what happened to an uploaded
// reference document.
type DocumentContextResult struct {
	Chars      int
	Summarized bool
}
