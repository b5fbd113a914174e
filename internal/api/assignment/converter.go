package assignment

import (
	"sort"

	"github.com/ethicallogix/assignment-maker/internal/entity"
)

// toEntityRequest converts the wire request to the domain request
func toEntityRequest(req *entity.GenerateAssignmentRequest) *entity.AssignmentRequest {
	return &entity.AssignmentRequest{
		University:  req.University,
		StudentName: req.StudentName,
		StudentID:   req.StudentID,
		Program:     req.Program,
		Subject:     req.Subject,
		Instructor:  req.Instructor,
		Semester:    req.Semester,
		Topic:       req.Topic,

		Type:           entity.AssignmentType(req.AssignmentType),
		Difficulty:     entity.Difficulty(req.Difficulty),
		WordPreference: entity.WordCountPreference(req.WordCount),
		QuestionCount:  req.QuestionCount,

		IncludeReferences:         req.IncludeReferences,
		IncludeExamples:           req.IncludeExamples,
		IncludeLearningObjectives: req.IncludeLearningObjectives,
		IncludeRubric:             req.IncludeRubric,
		IncludeImages:             req.IncludeImages,

		ImageStyle: entity.ImageStyle(req.ImageStyle),
	}
}

// toAssignmentDTO converts a generated assignment to its wire form
func toAssignmentDTO(a *entity.GeneratedAssignment) *entity.AssignmentDTO {
	illustrated := make([]string, 0, len(a.Images))
	for section := range a.Images {
		illustrated = append(illustrated, section)
	}
	sort.Strings(illustrated)

	return &entity.AssignmentDTO{
		ID:                  a.Document.ID,
		Content:             a.Document.Content,
		GenerationTime:      a.Document.GenerationTime,
		WordCount:           a.Document.WordCount,
		CharCount:           a.Document.CharCount,
		IllustratedSections: illustrated,
		CreatedAt:           a.Document.CreatedAt,
	}
}
