package assignment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/ethicallogix/assignment-maker/internal/api/middleware"
	"github.com/ethicallogix/assignment-maker/internal/config"
	"github.com/ethicallogix/assignment-maker/internal/entity"
	"github.com/ethicallogix/assignment-maker/internal/pkg/logger"
	"github.com/ethicallogix/assignment-maker/internal/pkg/response"
)

type Handler struct {
	usecase AssignmentUsecase
	cfg     config.FileUploadConfig
}

func NewHandler(usecase AssignmentUsecase, cfg config.FileUploadConfig) *Handler {
	return &Handler{
		usecase: usecase,
		cfg:     cfg,
	}
}

// Generate handles POST /assignments
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateAssignment")

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		h.respondError(ctx, w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	var req entity.GenerateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	ctxzap.Info(ctx, "generating assignment",
		zap.String("subject", req.Subject),
		zap.String("topic", req.Topic),
		zap.Bool("include_images", req.IncludeImages),
	)

	outcome, err := h.usecase.Generate(ctx, session.Username, toEntityRequest(&req))
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	if len(outcome.ValidationErrors) > 0 {
		ctxzap.Warn(ctx, "assignment request rejected",
			zap.Strings("validation_errors", outcome.ValidationErrors),
		)
		response.JSON(w, http.StatusBadRequest, entity.ValidationErrorResponse{
			Errors: outcome.ValidationErrors,
		})
		return
	}

	if outcome.Failed {
		ctxzap.Warn(ctx, "generation failed", zap.String("message", outcome.Message))
		response.JSON(w, http.StatusOK, entity.GenerateAssignmentResponse{
			Status:  "failed",
			Message: outcome.Message,
		})
		return
	}

	ctxzap.Info(ctx, "assignment generated successfully",
		zap.String("document_id", outcome.Assignment.Document.ID),
	)
	response.JSON(w, http.StatusOK, entity.GenerateAssignmentResponse{
		Status:     "generated",
		Assignment: toAssignmentDTO(outcome.Assignment),
	})
}

// Current handles GET /assignments/current
func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CurrentAssignment")

	current, err := h.usecase.CurrentAssignment()
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Debug(ctx, "current assignment fetched", zap.String("document_id", current.Document.ID))
	response.JSON(w, http.StatusOK, toAssignmentDTO(current))
}

// Export handles GET /assignments/current/export
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ExportAssignment")

	formatParam := r.URL.Query().Get("format")
	if formatParam == "" {
		formatParam = "pdf"
	}

	format := entity.ExportFormat(formatParam)
	if !format.IsValid() {
		ctxzap.Warn(ctx, "invalid format parameter", zap.String("format", formatParam))
		h.respondError(ctx, w, http.StatusBadRequest, "format must be one of: pdf, md, txt, docx", nil)
		return
	}

	ctx = logger.AddFields(ctx, zap.String("format", string(format)))

	artifact, err := h.usecase.Export(ctx, format)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "assignment exported",
		zap.String("filename", artifact.Filename),
		zap.Int("bytes", len(artifact.Data)),
	)
	response.Attachment(w, artifact.ContentType, artifact.Filename, artifact.Data)
}

// UploadLogo handles PUT /assignments/logo
func (h *Handler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "UploadLogo")

	if err := r.ParseMultipartForm(h.cfg.MaxLogoBytes()); err != nil {
		ctxzap.Error(ctx, "failed to parse multipart form", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "invalid form data or size too large", err)
		return
	}

	_, header, err := r.FormFile("logo")
	if err != nil {
		ctxzap.Warn(ctx, "missing logo file", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "logo file is required", err)
		return
	}

	if err := h.usecase.UploadLogo(ctx, header); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.JSON(w, http.StatusOK, entity.LogoUploadResponse{
		Status: "ok",
		Size:   int(header.Size),
	})
}

// ClearLogo handles DELETE /assignments/logo
func (h *Handler) ClearLogo(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ClearLogo")

	h.usecase.ClearLogo(ctx)
	response.JSON(w, http.StatusOK, entity.StatusResponse{Status: "ok"})
}

// SetDocumentContext handles PUT /assignments/context
func (h *Handler) SetDocumentContext(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "SetDocumentContext")

	if err := r.ParseMultipartForm(h.cfg.MaxDocumentBytes()); err != nil {
		ctxzap.Error(ctx, "failed to parse multipart form", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "invalid form data or size too large", err)
		return
	}

	_, header, err := r.FormFile("document")
	if err != nil {
		ctxzap.Warn(ctx, "missing document file", zap.Error(err))
		h.respondError(ctx, w, http.StatusBadRequest, "document file is required", err)
		return
	}

	result, err := h.usecase.SetDocumentContext(ctx, header)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.JSON(w, http.StatusOK, entity.DocumentContextResponse{
		Status:     "ok",
		Chars:      result.Chars,
		Summarized: result.Summarized,
	})
}

// ClearDocumentContext handles DELETE /assignments/context
func (h *Handler) ClearDocumentContext(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ClearDocumentContext")

	h.usecase.ClearDocumentContext(ctx)
	response.JSON(w, http.StatusOK, entity.StatusResponse{Status: "ok"})
}

// ResetState handles DELETE /assignments/current
func (h *Handler) ResetState(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ResetState")

	h.usecase.Reset(ctx)
	response.JSON(w, http.StatusOK, entity.StatusResponse{Status: "ok"})
}

// GenerationHealth handles GET /generation/health
func (h *Handler) GenerationHealth(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerationHealth")

	status := h.usecase.GenerationHealth(ctx)

	ctxzap.Info(ctx, "generation health checked", zap.Bool("ok", status.OK))
	response.JSON(w, http.StatusOK, entity.GenerationHealthResponse{
		OK:      status.OK,
		Message: status.Message,
	})
}

// Helper methods
func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Error(ctx, message)
	}
	response.Error(w, status, message)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, entity.ErrNoAssignment) {
		h.respondError(ctx, w, http.StatusNotFound, "no assignment has been generated", err)
	} else if errors.Is(err, entity.ErrUnknownFormat) {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid format parameter", err)
	} else if errors.Is(err, entity.ErrInvalidParameter) || errors.Is(err, entity.ErrMissingField) {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	} else if errors.Is(err, entity.ErrInvalidFile) || errors.Is(err, entity.ErrFileTooLarge) ||
		errors.Is(err, entity.ErrInvalidExtension) || errors.Is(err, entity.ErrEmptyDocument) {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid file", err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
