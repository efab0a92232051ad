package pdfio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/labelsort/backend/internal/domain"
)

// Collector implements the low-level PDF page primitives with pdfcpu.
// It never mutates input buffers; every operation writes a new document.
type Collector struct {
	conf *model.Configuration
}

// NewCollector creates a page collector.
func NewCollector() *Collector {
	conf := model.NewDefaultConfiguration()
	// Relaxed validation: shipping label PDFs come from many different
	// generators and are rarely strictly conformant.
	conf.ValidationMode = model.ValidationRelaxed
	return &Collector{conf: conf}
}

// Merge concatenates the given documents into one, preserving page order.
func (c *Collector) Merge(ctx context.Context, documents [][]byte) ([]byte, error) {
	if len(documents) == 0 {
		return nil, domain.ErrNoDocuments
	}
	if len(documents) == 1 {
		out := make([]byte, len(documents[0]))
		copy(out, documents[0])
		return out, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	readers := make([]io.ReadSeeker, len(documents))
	for i, doc := range documents {
		readers[i] = bytes.NewReader(doc)
	}
	var buf bytes.Buffer
	if err := api.MergeRaw(readers, &buf, false, c.conf); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}
	return buf.Bytes(), nil
}

// PageCount returns the number of pages in the document.
func (c *Collector) PageCount(ctx context.Context, document []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	pdfCtx, err := api.ReadValidateAndOptimize(bytes.NewReader(document), c.conf)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidDocument, err)
	}
	return pdfCtx.PageCount, nil
}

// Collect copies the pages at the given 0-based positions, in exactly the
// order given, into a new PDF document.
func (c *Collector) Collect(ctx context.Context, document []byte, positions []int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	selected := make([]string, len(positions))
	for i, pos := range positions {
		// pdfcpu page selections are 1-based.
		selected[i] = strconv.Itoa(pos + 1)
	}
	var buf bytes.Buffer
	if err := api.Collect(bytes.NewReader(document), &buf, selected, c.conf); err != nil {
		return nil, fmt.Errorf("collecting %d pages: %w", len(positions), err)
	}
	return buf.Bytes(), nil
}
