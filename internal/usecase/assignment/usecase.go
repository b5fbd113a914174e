package assignment

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/ethicallogix/assignment-maker/internal/entity"
	"github.com/ethicallogix/assignment-maker/internal/pkg/docparse"
	"github.com/ethicallogix/assignment-maker/internal/pkg/formatter"
	"github.com/ethicallogix/assignment-maker/internal/pkg/prompt"
	"github.com/ethicallogix/assignment-maker/internal/pkg/sections"
	"github.com/ethicallogix/assignment-maker/internal/pkg/validator"
	"github.com/ethicallogix/assignment-maker/internal/repository"
	"github.com/ethicallogix/assignment-maker/internal/state"
)

// Document context larger than this is summarized through the model
// before it is stored; summarization reads it in fixed-size chunks.
const (
	maxContextRunes   = 16000
	summaryChunkRunes = 4000
)

type AssignmentUsecase struct {
	generator              GenerationConnector
	illustrator            IllustrationConnector
	activityRepo           repository.ActivityRepository
	fileValidator          *validator.Validator
	store                  *state.Store
	formatters             *formatter.Factory
	renderCache            *cache.Cache
	imageServiceConfigured bool
	logger                 *zap.Logger
}

func NewAssignmentUsecase(
	generator GenerationConnector,
	illustrator IllustrationConnector,
	activityRepo repository.ActivityRepository,
	fileValidator *validator.Validator,
	store *state.Store,
	formatters *formatter.Factory,
	renderCache *cache.Cache,
	imageServiceConfigured bool,
	logger *zap.Logger,
) *AssignmentUsecase {
	return &AssignmentUsecase{
		generator:              generator,
		illustrator:            illustrator,
		activityRepo:           activityRepo,
		fileValidator:          fileValidator,
		store:                  store,
		formatters:             formatters,
		renderCache:            renderCache,
		imageServiceConfigured: imageServiceConfigured,
		logger:                 logger,
	}
}

// Generate runs the full pipeline: validate the form, build the prompt,
// call the model, extract sections and illustrate them, then publish the
// result as the current assignment. Validation and generation failures
// are reported in the outcome, not as errors; an error return means the
// pipeline itself broke.
func (uc *AssignmentUsecase) Generate(ctx context.Context, username string, req *entity.AssignmentRequest) (*entity.GenerationOutcome, error) {
	req.Normalize()

	if validationErrors := validator.ValidateAssignment(req, uc.imageServiceConfigured); len(validationErrors) > 0 {
		ctxzap.Info(ctx, "assignment request rejected",
			zap.Int("validation_errors", len(validationErrors)),
		)
		return &entity.GenerationOutcome{ValidationErrors: validationErrors}, nil
	}

	builtPrompt, meta := prompt.Build(req, uc.store.DocumentContext())
	ctxzap.Info(ctx, "assignment generation started",
		zap.String("subject", req.Subject),
		zap.String("student", req.StudentName),
		zap.String("word_count_range", meta.WordCountRange),
		zap.Bool("document_context", meta.HasDocumentContext),
	)

	result, err := uc.generator.Generate(ctx, builtPrompt)
	if err != nil {
		var genErr *entity.GenerationError
		if !errors.As(err, &genErr) {
			genErr = entity.ClassifyGenerationError(err)
		}
		ctxzap.Warn(ctx, "assignment generation failed",
			zap.String("kind", string(genErr.Kind)),
			zap.Error(genErr.Err),
		)
		return &entity.GenerationOutcome{Failed: true, Message: genErr.UserMessage()}, nil
	}

	doc := entity.GeneratedDocument{
		ID:             uuid.New().String(),
		Content:        result.Text,
		GenerationTime: result.Elapsed,
		WordCount:      len(strings.Fields(result.Text)),
		CharCount:      utf8.RuneCountInString(result.Text),
		CreatedAt:      time.Now(),
	}

	var images entity.SectionImageMap
	if req.IncludeImages {
		extracted := sections.Extract(result.Text)
		images = uc.illustrator.Illustrate(ctx, req.Subject, req.ImageStyle, extracted)
	}

	generated := &entity.GeneratedAssignment{
		Request:  *req,
		Document: doc,
		Images:   images,
	}
	uc.store.SetCurrent(generated)

	uc.recordActivity(ctx, username, entity.ActivityAssignmentGenerated,
		fmt.Sprintf("Subject: %s, Student: %s", req.Subject, req.StudentName))

	ctxzap.Info(ctx, "assignment generated",
		zap.String("document_id", doc.ID),
		zap.Int("word_count", doc.WordCount),
		zap.Int("images", len(images)),
		zap.Float64("elapsed_seconds", doc.GenerationTime),
	)

	return &entity.GenerationOutcome{Assignment: generated}, nil
}

// CurrentAssignment returns the last generated assignment.
func (uc *AssignmentUsecase) CurrentAssignment() (*entity.GeneratedAssignment, error) {
	current := uc.store.Current()
	if current == nil {
		return nil, entity.ErrNoAssignment
	}
	return current, nil
}

// Export renders the current assignment in the requested format. PDF
// renders are memoized: rendering is deterministic, so the same input
// tuple always yields the same bytes.
func (uc *AssignmentUsecase) Export(ctx context.Context, format entity.ExportFormat) (*entity.ExportArtifact, error) {
	current := uc.store.Current()
	if current == nil {
		return nil, entity.ErrNoAssignment
	}

	f, err := uc.formatters.Create(format)
	if err != nil {
		return nil, err
	}

	input := uc.renderInput(current)

	var data []byte
	if format == entity.FormatPDF {
		data, err = uc.renderPDFCached(ctx, f, input)
	} else {
		data, err = f.Format(input)
	}
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", format, err)
	}

	artifact := &entity.ExportArtifact{
		Data:        data,
		ContentType: f.ContentType(),
		Filename:    exportFilename(&current.Request, input.SubmissionDate) + f.FileExtension(),
	}

	ctxzap.Info(ctx, "assignment exported",
		zap.String("format", string(format)),
		zap.String("filename", artifact.Filename),
		zap.Int("bytes", len(artifact.Data)),
	)

	return artifact, nil
}

// UploadLogo stores a cover logo used by subsequent PDF exports.
func (uc *AssignmentUsecase) UploadLogo(ctx context.Context, file *multipart.FileHeader) error {
	if err := uc.fileValidator.ValidateLogoUpload(file); err != nil {
		return err
	}

	content, err := readUpload(file)
	if err != nil {
		return err
	}

	uc.store.SetLogo(content)
	ctxzap.Info(ctx, "logo uploaded",
		zap.String("filename", file.Filename),
		zap.Int("size_bytes", len(content)),
	)
	return nil
}

// ClearLogo removes the stored cover logo.
func (uc *AssignmentUsecase) ClearLogo(ctx context.Context) {
	uc.store.ClearLogo()
	ctxzap.Info(ctx, "logo cleared")
}

// SetDocumentContext extracts text from an uploaded reference document
// and stores it for prompt building. Oversized documents are summarized
// through the model; if summarization fails the truncated original is
// stored instead.
func (uc *AssignmentUsecase) SetDocumentContext(ctx context.Context, file *multipart.FileHeader) (*entity.DocumentContextResult, error) {
	if err := uc.fileValidator.ValidateDocumentUpload(file); err != nil {
		return nil, err
	}

	content, err := readUpload(file)
	if err != nil {
		return nil, err
	}

	text, err := docparse.ExtractText(file.Filename, content)
	if err != nil {
		return nil, err
	}

	stored := text
	summarized := false
	if runes := []rune(text); len(runes) > maxContextRunes {
		truncated := string(runes[:maxContextRunes])
		summary, err := uc.summarizeContext(ctx, truncated)
		if err != nil {
			ctxzap.Warn(ctx, "context summarization failed, storing truncated text", zap.Error(err))
			stored = truncated
		} else {
			stored = summary
			summarized = true
		}
	}

	uc.store.SetDocumentContext(stored)

	chars := utf8.RuneCountInString(stored)
	ctxzap.Info(ctx, "document context set",
		zap.String("filename", file.Filename),
		zap.Int("chars", chars),
		zap.Bool("summarized", summarized),
	)

	return &entity.DocumentContextResult{Chars: chars, Summarized: summarized}, nil
}

// ClearDocumentContext drops the stored reference document text.
func (uc *AssignmentUsecase) ClearDocumentContext(ctx context.Context) {
	uc.store.SetDocumentContext("")
	ctxzap.Info(ctx, "document context cleared")
}

// Reset drops the current assignment and document context. The uploaded
// logo survives so repeated generations keep the institution branding.
func (uc *AssignmentUsecase) Reset(ctx context.Context) {
	uc.store.Reset()
	ctxzap.Info(ctx, "assignment state reset")
}

// GenerationHealth probes the model API with a trivial prompt.
func (uc *AssignmentUsecase) GenerationHealth(ctx context.Context) *entity.ConnectionStatus {
	return uc.generator.CheckConnection(ctx)
}
