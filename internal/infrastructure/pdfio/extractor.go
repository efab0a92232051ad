// Package pdfio implements the PDF collaborators: per-page text
// extraction via ledongthuc/pdf and page copying via pdfcpu. Both are
// pure Go, so the service ships as a single binary.
package pdfio

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/ledongthuc/pdf"

	"github.com/labelsort/backend/internal/domain"
)

// Extractor extracts plain text from in-memory PDF documents.
type Extractor struct {
	debug bool
}

// NewExtractor creates a text extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// SetDebug enables per-page extraction logging.
func (e *Extractor) SetDebug(debug bool) {
	e.debug = debug
}

// PageTexts returns the extracted plain text of every page, in page
// order. A page with no extractable text (image-only, damaged content
// stream) yields an empty string; only a document that cannot be opened
// at all is an error.
func (e *Extractor) PageTexts(ctx context.Context, document []byte) ([]string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(document), int64(len(document)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}

	numPages := reader.NumPage()
	texts := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			texts = append(texts, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			if e.debug {
				log.Printf("[PDF] page %d text extraction failed: %v", i, err)
			}
			texts = append(texts, "")
			continue
		}
		texts = append(texts, text)
	}
	return texts, nil
}
