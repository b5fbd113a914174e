package prompt

import (
	"fmt"
	"strings"

	"github.com/ethicallogix/assignment-maker/internal/entity"
)

// maxContextChars caps how much uploaded-document text is spliced into
// the prompt.
const maxContextChars = 3000

// Metadata records the derived values the builder chose for one prompt.
type Metadata struct {
	WordCountRange      string
	ExamplesInstruction string
	QuestionCount       int
	HasDocumentContext  bool
}

const template = `You are an expert university professor and academic writer.
Create a professional %s assignment suitable for %s-level students.

CRITICAL FORMATTING RULES:
- Use ## for main section headings (e.g., ## INTRODUCTION)
- Use ### for subsection headings (e.g., ### Importance of Biofertilizers)
- Do NOT use any "Question" or "Answer" format.
- Maintain consistent academic formatting and spacing.
- Write in formal academic English throughout.

Topic: %s
Subject: %s
%s
INSTRUCTIONS:
- Structure the assignment with clear sections and subsections.
- Each subsection should explain key aspects of the topic in a coherent, analytical manner.
- Maintain academic flow — introduction, main discussion (divided into logical subtopics), and conclusion.
- Use discipline-appropriate terminology and theoretical insights%s.
- Provide depth, evidence-based reasoning, and critical reflection.
- Each major section should contain approximately %s words.

## INTRODUCTION
[Write short paragraph of introduction on 2-3 lines:
- Provide background and significance of the topic
- Explain its relevance to the academic discipline
- Outline the key concepts or challenges explored
- State the overall purpose and learning outcomes of the assignment]
%s%s
## MAIN DISCUSSION
[Organize this section into several subheadings and this section is short paragraph on 2-3 lines, e.g.:
### Definition and Concept
### Mechanism or Process
### Applications
### Challenges and Future Prospects
Each subsection should elaborate comprehensively with academic reasoning and examples.]

## CONCLUSION
[Write 1 paragraphs synthesizing the key insights from all sections and reflecting on the broader academic and practical significance of the topic.]
%s`

const (
	examplesBlock = "\n- Include practical examples and real-world applications."

	learningObjectivesBlock = "\n## LEARNING OBJECTIVES\n[List 3–5 clear, measurable learning objectives that students should achieve after completing this assignment.]\n"

	rubricBlock = "\n## EVALUATION RUBRIC\n[Provide 4–5 criteria with brief descriptors for Excellent, Good, Satisfactory, and Poor performance (concise table style).]\n"

	referencesBlock = "\n## REFERENCES\n\n"
)

// Build renders the model prompt for a normalized request. The output
// depends only on the arguments, so identical inputs give identical
// prompts. Optional blocks are spliced in whole or absent entirely.
func Build(req *entity.AssignmentRequest, documentContext string) (string, Metadata) {
	wordCount := wordCountRange(req.WordPreference)

	examples := ""
	if req.IncludeExamples {
		examples = examplesBlock
	}

	objectives := ""
	if req.IncludeLearningObjectives {
		objectives = learningObjectivesBlock
	}

	rubric := ""
	if req.IncludeRubric {
		rubric = rubricBlock
	}

	references := ""
	if req.IncludeReferences {
		references = referencesBlock
	}

	context := ""
	if documentContext != "" {
		context = contextBlock(documentContext)
	}

	text := fmt.Sprintf(template,
		req.Type, req.Difficulty,
		req.Topic, req.Subject,
		context,
		examples,
		wordCount,
		objectives, rubric,
		references,
	)

	meta := Metadata{
		WordCountRange:      wordCount,
		ExamplesInstruction: examples,
		QuestionCount:       req.QuestionCount,
		HasDocumentContext:  documentContext != "",
	}
	return text, meta
}

// wordCountRange collapses the preference label to the per-section word
// range given to the model. Matching is by substring so custom labels
// that mention "Concise" or "Detailed" still map.
func wordCountRange(pref entity.WordCountPreference) string {
	s := string(pref)
	switch {
	case strings.Contains(s, "Concise"):
		return "100-150"
	case strings.Contains(s, "Detailed"):
		return "800-1000"
	default:
		return "100-150"
	}
}

func contextBlock(documentContext string) string {
	excerpt := documentContext
	if runes := []rune(excerpt); len(runes) > maxContextChars {
		excerpt = string(runes[:maxContextChars])
	}
	return "\nDOCUMENT CONTEXT PROVIDED:\n" + excerpt +
		"\n\nUse this context to enhance the assignment content. Integrate the information naturally with additional insights.\n"
}
