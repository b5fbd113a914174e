package generation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ethicallogix/assignment-maker/internal/config"
	"github.com/ethicallogix/assignment-maker/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const connectionProbePrompt = "Say 'API connection successful'"

type Connector struct {
	client *genai.Client
	config config.GenerationConfig
	logger *zap.Logger
}

func NewConnector(ctx context.Context, cfg config.GenerationConfig, logger *zap.Logger) (*Connector, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Connector{
		client: client,
		config: cfg,
		logger: logger,
	}, nil
}

// Generate sends one prompt to the configured Gemini model. Failures
// come back as classified *entity.GenerationError values so callers can
// surface remediation text instead of raw SDK errors.
func (c *Connector) Generate(ctx context.Context, prompt string) (*entity.GenerationResult, error) {
	ctxzap.Info(ctx, "generating text via Gemini",
		zap.String("model", c.config.Model),
		zap.Int("prompt_chars", len(prompt)),
	)

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	started := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.config.Model, genai.Text(prompt), nil)
	elapsed := time.Since(started).Seconds()
	if err != nil {
		genErr := entity.ClassifyGenerationError(err)
		ctxzap.Error(ctx, "generation failed",
			zap.String("kind", string(genErr.Kind)),
			zap.Float64("elapsed_seconds", elapsed),
			zap.Error(err),
		)
		return nil, genErr
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		ctxzap.Warn(ctx, "model returned empty response", zap.Float64("elapsed_seconds", elapsed))
		return nil, entity.ClassifyGenerationError(entity.ErrEmptyModelResponse)
	}

	ctxzap.Info(ctx, "text generated",
		zap.Float64("elapsed_seconds", elapsed),
		zap.Int("chars", len(text)),
	)

	return &entity.GenerationResult{Text: text, Elapsed: elapsed}, nil
}

// CheckConnection probes the model with a trivial prompt.
func (c *Connector) CheckConnection(ctx context.Context) *entity.ConnectionStatus {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx, c.config.Model, genai.Text(connectionProbePrompt), nil)
	if err != nil {
		ctxzap.Warn(ctx, "connection probe failed", zap.Error(err))
		return &entity.ConnectionStatus{
			OK:      false,
			Message: fmt.Sprintf("%s API connection failed: %v", entity.FailureMarker, err),
		}
	}

	if strings.TrimSpace(resp.Text()) == "" {
		return &entity.ConnectionStatus{
			OK:      false,
			Message: entity.FailureMarker + " API returned empty response",
		}
	}

	return &entity.ConnectionStatus{
		OK:      true,
		Message: "✅ API connection successful!",
	}
}
