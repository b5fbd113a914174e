package illustration

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/ethicallogix/assignment-maker/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector hands out a fixed placeholder PNG for every section so
// the rendering pipeline can run without the image service.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Illustrate(ctx context.Context, subject string, style entity.ImageStyle, sections []entity.Section) entity.SectionImageMap {
	ctxzap.Info(ctx, "[MOCK] generating illustrations",
		zap.String("style", string(style)),
		zap.Int("sections", len(sections)),
	)

	images := make(entity.SectionImageMap)
	for i, section := range sections {
		if i >= maxIllustratedSections {
			break
		}
		images[strings.ToUpper(strings.TrimSpace(section.Title))] = placeholderPNG()
	}
	return images
}

// placeholderPNG encodes a small solid-color image. Encoding the same
// pixels always yields the same bytes, keeping mock output stable.
func placeholderPNG() []byte {
	img := image.NewRGBA(image.Rect(0, 0, 8, 5))
	for x := 0; x < 8; x++ {
		for y := 0; y < 5; y++ {
			img.Set(x, y, color.RGBA{R: 226, G: 232, B: 240, A: 255})
		}
	}

	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}
