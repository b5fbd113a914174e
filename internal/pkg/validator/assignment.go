package validator

import (
	"fmt"
	"strings"

	"github.com/ethicallogix/assignment-maker/internal/entity"
)

// Minimum lengths for the required form fields, measured on the
// whitespace-trimmed value.
const (
	MinUniversityLen  = 3
	MinStudentNameLen = 2
	MinStudentIDLen   = 3
	MinProgramLen     = 5
	MinSubjectLen     = 3
	MinTopicLen       = 20
)

// ValidateAssignment checks every rule and returns the full ordered list
// of violation messages. An empty slice means the request is acceptable.
func ValidateAssignment(req *entity.AssignmentRequest, imageServiceConfigured bool) []string {
	var errs []string

	if tooShort(req.University, MinUniversityLen) {
		errs = append(errs, fmt.Sprintf("University name must be at least %d characters.", MinUniversityLen))
	}
	if tooShort(req.StudentName, MinStudentNameLen) {
		errs = append(errs, fmt.Sprintf("Student name must be at least %d characters.", MinStudentNameLen))
	}
	if tooShort(req.StudentID, MinStudentIDLen) {
		errs = append(errs, fmt.Sprintf("Student ID must be at least %d characters.", MinStudentIDLen))
	}
	if tooShort(req.Program, MinProgramLen) {
		errs = append(errs, fmt.Sprintf("Program name must be at least %d characters.", MinProgramLen))
	}
	if tooShort(req.Subject, MinSubjectLen) {
		errs = append(errs, fmt.Sprintf("Subject name must be at least %d characters.", MinSubjectLen))
	}
	if tooShort(req.Topic, MinTopicLen) {
		errs = append(errs, fmt.Sprintf("Assignment topic must be at least %d characters.", MinTopicLen))
	}

	if req.IncludeImages && !imageServiceConfigured {
		errs = append(errs, "Image generation is enabled but no image service credential is configured.")
	}

	return errs
}

func tooShort(s string, minLen int) bool {
	return len(strings.TrimSpace(s)) < minLen
}
