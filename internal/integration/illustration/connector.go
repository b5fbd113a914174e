package illustration

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/ethicallogix/assignment-maker/internal/config"
	"github.com/ethicallogix/assignment-maker/internal/entity"
	"github.com/ethicallogix/assignment-maker/internal/integration/common"
	pkghttp "github.com/ethicallogix/assignment-maker/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// maxIllustratedSections caps how many sections get an image per
// document, regardless of how many the extractor found.
const maxIllustratedSections = 5

const (
	imageWidth  = 800
	imageHeight = 500
)

// excerptRunes bounds how much section body is quoted in the prompt.
const excerptRunes = 200

type illustrationRequest struct {
	Prompt string `json:"prompt"`
	Style  string `json:"style"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

type Connector struct {
	config    config.IllustrationConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(cfg config.IllustrationConnectorConfig, logger *zap.Logger) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Illustrate fetches one image per section, first five sections only,
// one call at a time. A failed fetch logs a warning and the section
// renders without an image; a failure never aborts the batch.
func (c *Connector) Illustrate(ctx context.Context, subject string, style entity.ImageStyle, sections []entity.Section) entity.SectionImageMap {
	images := make(entity.SectionImageMap)

	for i, section := range sections {
		if i >= maxIllustratedSections {
			break
		}

		req := &illustrationRequest{
			Prompt: sectionPrompt(subject, section),
			Style:  string(style),
			Width:  imageWidth,
			Height: imageHeight,
			Format: "png",
		}

		data, err := c.connector.DoBinaryRequest(ctx, http.MethodPost, c.config.GenerateEndpoint, req)
		if err != nil {
			ctxzap.Warn(ctx, "illustration request failed",
				zap.String("section", section.Title),
				zap.Error(err),
			)
			continue
		}

		images[strings.ToUpper(strings.TrimSpace(section.Title))] = data
	}

	ctxzap.Info(ctx, "illustrations fetched",
		zap.Int("sections", len(sections)),
		zap.Int("received", len(images)),
	)

	return images
}

func sectionPrompt(subject string, section entity.Section) string {
	excerpt := section.Body
	if runes := []rune(excerpt); len(runes) > excerptRunes {
		excerpt = string(runes[:excerptRunes])
	}
	return fmt.Sprintf("Educational illustration for an academic assignment on %s: %s. %s", subject, section.Title, excerpt)
}
