package validator

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/ethicallogix/assignment-maker/internal/config"
	"github.com/ethicallogix/assignment-maker/internal/entity"
)

// DocumentExtensions lists the reference document types the context
// extractor can read.
var DocumentExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".docx": true,
}

// Validator validates file uploads
type Validator struct {
	cfg config.FileUploadConfig
}

func NewFileValidator(cfg config.FileUploadConfig) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateLogoUpload validates a cover logo upload (PNG only)
func (v *Validator) ValidateLogoUpload(file *multipart.FileHeader) error {
	if file == nil {
		return entity.ErrMissingField
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".png" {
		return fmt.Errorf("%w: %s (only .png files are allowed)", entity.ErrInvalidExtension, ext)
	}

	if file.Size > v.cfg.MaxLogoBytes() {
		return fmt.Errorf("%w: file '%s' is %d bytes (max %d)", entity.ErrFileTooLarge, file.Filename, file.Size, v.cfg.MaxLogoBytes())
	}

	contentType := file.Header.Get("Content-Type")
	if contentType != "" &&
		contentType != "image/png" &&
		contentType != "application/octet-stream" {
		return fmt.Errorf("%w: content type '%s' (expected image/png or application/octet-stream)", entity.ErrInvalidExtension, contentType)
	}

	return nil
}

// ValidateDocumentUpload validates a reference document upload
func (v *Validator) ValidateDocumentUpload(file *multipart.FileHeader) error {
	if file == nil {
		return entity.ErrMissingField
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := DocumentExtensions[ext]; !ok {
		return fmt.Errorf("%w: %s (allowed: txt, md, docx)", entity.ErrInvalidExtension, ext)
	}

	if file.Size > v.cfg.MaxDocumentBytes() {
		return fmt.Errorf("%w: file '%s' is %d bytes (max %d)", entity.ErrFileTooLarge, file.Filename, file.Size, v.cfg.MaxDocumentBytes())
	}

	return nil
}

// SanitizeFilename sanitizes a filename for safe storage
func SanitizeFilename(filename string) string {
	filename = filepath.Base(filename)
	replacer := strings.NewReplacer(
		" ", "_",
		"(", "",
		")", "",
		"[", "",
		"]", "",
		"{", "",
		"}", "",
	)
	return replacer.Replace(filename)
}
