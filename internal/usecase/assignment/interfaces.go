package assignment

import (
	"context"

	"github.com/ethicallogix/assignment-maker/internal/entity"
)

type GenerationConnector interface {
	Generate(ctx context.Context, prompt string) (*entity.GenerationResult, error)
	CheckConnection(ctx context.Context) *entity.ConnectionStatus
}

type IllustrationConnector interface {
	Illustrate(ctx context.Context, subject string, style entity.ImageStyle, sections []entity.Section) entity.SectionImageMap
}
