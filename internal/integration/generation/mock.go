package generation

import (
	"context"
	"sync"

	"github.com/ethicallogix/assignment-maker/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockResult is one queued canned generation outcome.
type MockResult struct {
	Text    string
	Elapsed float64
	Err     error
}

const mockAssignmentText = `## INTRODUCTION
This assignment examines the requested topic and situates it within the broader subject area. The sections below outline the key ideas, their practical weight, and the conclusions that follow from them.

## MAIN DISCUSSION
The discussion is organised around the central concepts of the topic and their relationships.

### Key Concepts
The topic rests on a small number of load-bearing ideas. Each is introduced with a working definition and then connected to the questions the assignment poses.

### Practical Applications
Beyond theory, the topic shows up in day-to-day engineering and research practice. Typical applications include process design, evaluation of trade-offs, and structured decision making.

**Question:** How does the topic apply in a practical setting?

**Answer:** It provides a vocabulary and a set of criteria for comparing alternatives, which makes otherwise informal decisions reviewable.

## CONCLUSION
The material covered above supports a compact set of conclusions. The topic rewards systematic study, and its core concepts transfer readily to adjacent problems.

## REFERENCES
1. Anderson, P. (2021). Foundations of Modern Study. Academic Press.
2. Lee, M. (2022). Applied Perspectives in Education. University Press.
3. Okafor, T. (2023). Structured Writing for Students. Scholarly Books.`

// MockConnector serves canned results in FIFO order and records every
// prompt. With an empty queue it falls back to a fixed assignment
// document so the full pipeline runs without credentials.
type MockConnector struct {
	logger *zap.Logger

	mu      sync.Mutex
	queued  []MockResult
	prompts []string
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

// Queue appends canned results returned by subsequent Generate calls.
func (m *MockConnector) Queue(results ...MockResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queued = append(m.queued, results...)
}

// Prompts returns a copy of every prompt received so far.
func (m *MockConnector) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}

func (m *MockConnector) Generate(ctx context.Context, prompt string) (*entity.GenerationResult, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	var next *MockResult
	if len(m.queued) > 0 {
		next = &m.queued[0]
		m.queued = m.queued[1:]
	}
	m.mu.Unlock()

	ctxzap.Info(ctx, "[MOCK] generating text", zap.Int("prompt_chars", len(prompt)))

	if next == nil {
		return &entity.GenerationResult{Text: mockAssignmentText, Elapsed: 0.01}, nil
	}
	if next.Err != nil {
		return nil, next.Err
	}
	return &entity.GenerationResult{Text: next.Text, Elapsed: next.Elapsed}, nil
}

func (m *MockConnector) CheckConnection(ctx context.Context) *entity.ConnectionStatus {
	ctxzap.Info(ctx, "[MOCK] connection probe")
	return &entity.ConnectionStatus{OK: true, Message: "✅ API connection successful!"}
}
