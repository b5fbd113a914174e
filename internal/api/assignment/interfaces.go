package assignment

import (
	"context"
	"mime/multipart"

	"github.com/ethicallogix/assignment-maker/internal/entity"
)

type AssignmentUsecase interface {
	Generate(ctx context.Context, username string, req *entity.AssignmentRequest) (*entity.GenerationOutcome, error)
	CurrentAssignment() (*entity.GeneratedAssignment, error)
	Export(ctx context.Context, format entity.ExportFormat) (*entity.ExportArtifact, error)
	UploadLogo(ctx context.Context, file *multipart.FileHeader) error
	ClearLogo(ctx context.Context)
	SetDocumentContext(ctx context.Context, file *multipart.FileHeader) (*entity.DocumentContextResult, error)
	ClearDocumentContext(ctx context.Context)
	Reset(ctx context.Context)
	GenerationHealth(ctx context.Context) *entity.ConnectionStatus
}
