package entity

import "errors"

// Domain errors
var (
	// Assignment errors
	ErrNoAssignment       = errors.New("no generated assignment available")
	ErrUnknownFormat      = errors.New("unknown export format")
	ErrEmptyModelResponse = errors.New("empty response from model")

	// File errors
	ErrInvalidFile      = errors.New("invalid file")
	ErrFileTooLarge     = errors.New("file too large")
	ErrInvalidExtension = errors.New("invalid file extension")
	ErrEmptyDocument    = errors.New("no meaningful text extracted from document")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrUserDisabled       = errors.New("user account is disabled")
	ErrSessionNotFound    = errors.New("session not found")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidParameter = errors.New("invalid parameter")
)
