package domain

import "errors"

var (
	// ErrNoDocuments is returned when a sort request carries no PDF files
	ErrNoDocuments = errors.New("no documents provided")

	// ErrInvalidDocument is returned when an uploaded file is not a readable PDF
	ErrInvalidDocument = errors.New("invalid or unreadable PDF document")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrRunNotFound is returned when a sort run has expired or never existed
	ErrRunNotFound = errors.New("sort run not found")

	// ErrDocumentNotFound is returned when a run exists but has no document by that name
	ErrDocumentNotFound = errors.New("document not found in sort run")

	// ErrArchiveUnavailable is returned when the archive store cannot be reached
	ErrArchiveUnavailable = errors.New("archive store unavailable")
)
