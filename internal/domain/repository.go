package domain

import "context"

// TextExtractor defines the interface for per-page plain text extraction.
// Implementations must return one string per page, in page order. A page
// whose extraction fails yields an empty string rather than an error —
// one bad page never aborts the run.
type TextExtractor interface {
	PageTexts(ctx context.Context, document []byte) ([]string, error)
}

// PageCollector defines the interface for the low-level PDF primitives:
// merging input documents, counting pages, and copying selected pages
// (in the given order, 0-based positions) into a new document.
type PageCollector interface {
	Merge(ctx context.Context, documents [][]byte) ([]byte, error)
	PageCount(ctx context.Context, document []byte) (int, error)
	Collect(ctx context.Context, document []byte, positions []int) ([]byte, error)
}

// ArchiveStore defines the interface for pushing sorted documents to
// shared storage so operators can fetch them outside the HTTP session.
type ArchiveStore interface {
	StoreDocument(ctx context.Context, runID, name string, data []byte) error
}
