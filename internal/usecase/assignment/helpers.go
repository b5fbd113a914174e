package assignment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"sort"
	"strings"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/ethicallogix/assignment-maker/internal/entity"
	"github.com/ethicallogix/assignment-maker/internal/pkg/formatter"
	"github.com/ethicallogix/assignment-maker/internal/pkg/validator"
)

func (uc *AssignmentUsecase) renderInput(current *entity.GeneratedAssignment) *entity.RenderInput {
	return &entity.RenderInput{
		Cover:             current.Request.Cover(),
		Content:           current.Document.Content,
		IncludeReferences: current.Request.IncludeReferences,
		Images:            current.Images,
		Logo:              uc.store.Logo(),
		SubmissionDate:    time.Now(),
	}
}

func (uc *AssignmentUsecase) renderPDFCached(ctx context.Context, f formatter.Formatter, input *entity.RenderInput) ([]byte, error) {
	key := renderCacheKey(input)
	if cached, ok := uc.renderCache.Get(key); ok {
		ctxzap.Debug(ctx, "render cache hit", zap.String("key", key[:12]))
		return cached.([]byte), nil
	}

	data, err := f.Format(input)
	if err != nil {
		return nil, err
	}

	uc.renderCache.Set(key, data, cache.DefaultExpiration)
	return data, nil
}

// renderCacheKey hashes everything the deterministic renderer consumes,
// so two inputs collide only when their rendered bytes would too. The
// submission date participates at day granularity because that is all
// the cover page prints.
func renderCacheKey(in *entity.RenderInput) string {
	h := sha256.New()

	for _, field := range []string{
		in.Cover.University,
		in.Cover.StudentName,
		in.Cover.StudentID,
		in.Cover.Program,
		in.Cover.Subject,
		in.Cover.Instructor,
		in.Cover.Semester,
	} {
		h.Write([]byte(field))
		h.Write([]byte{0})
	}

	h.Write([]byte(in.Content))
	h.Write([]byte{0})

	if in.IncludeReferences {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}

	keys := make([]string, 0, len(in.Images))
	for key := range in.Images {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		sum := sha256.Sum256(in.Images[key])
		h.Write([]byte(key))
		h.Write([]byte{0})
		h.Write(sum[:])
	}

	if len(in.Logo) > 0 {
		sum := sha256.Sum256(in.Logo)
		h.Write(sum[:])
	}

	h.Write([]byte(in.SubmissionDate.Format("20060102")))

	return hex.EncodeToString(h.Sum(nil))
}

func exportFilename(req *entity.AssignmentRequest, t time.Time) string {
	base := fmt.Sprintf("%s_%s_%s", req.StudentName, req.Subject, t.Format("20060102"))
	return validator.SanitizeFilename(base)
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file %s: %w", file.Filename, err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read uploaded file %s: %w", file.Filename, err)
	}
	return content, nil
}

// summarizeContext condenses oversized document text through the model:
// each chunk is summarized separately, then the partial summaries are
// combined into a single academic summary.
func (uc *AssignmentUsecase) summarizeContext(ctx context.Context, text string) (string, error) {
	runes := []rune(text)

	var chunks []string
	for start := 0; start < len(runes); start += summaryChunkRunes {
		end := min(start+summaryChunkRunes, len(runes))
		chunks = append(chunks, string(runes[start:end]))
	}

	summaries := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		part := fmt.Sprintf("Summarize the following part (%d/%d):\n\n%s", i+1, len(chunks), chunk)
		result, err := uc.generator.Generate(ctx, part)
		if err != nil {
			return "", fmt.Errorf("summarize part %d/%d: %w", i+1, len(chunks), err)
		}
		summaries = append(summaries, strings.TrimSpace(result.Text))
	}

	combined := "Combine the following summaries into one clear, structured academic summary:\n\n" +
		strings.Join(summaries, "\n\n")
	result, err := uc.generator.Generate(ctx, combined)
	if err != nil {
		return "", fmt.Errorf("combine summaries: %w", err)
	}

	return strings.TrimSpace(result.Text), nil
}

// recordActivity logs the activity write failure instead of failing the
// operation that triggered it.
func (uc *AssignmentUsecase) recordActivity(ctx context.Context, username string, activityType entity.ActivityType, details string) {
	if err := uc.activityRepo.Record(ctx, username, activityType, details); err != nil {
		ctxzap.Warn(ctx, "failed to record activity",
			zap.String("activity_type", string(activityType)),
			zap.Error(err),
		)
	}
}
