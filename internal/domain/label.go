package domain

import (
	"fmt"
	"strings"
)

// Sentinel values for the three classification axes. A page that matches
// nothing on any axis carries all three and counts as unparsed.
const (
	CourierUnknown = "UNKNOWN"
	StyleOther     = "Other"
	SizeNA         = "NA"
)

// PageRecord is one page of the merged input document: its stable 0-based
// position and the plain text extracted from it. Immutable once created.
type PageRecord struct {
	Position int    `json:"position"`
	RawText  string `json:"-"`
}

// Classification is the (courier, style, size) triple derived from one
// page's text. Each axis is detected independently from the same text.
type Classification struct {
	Courier string `json:"courier"`
	Style   string `json:"style"`
	Size    string `json:"size"`
}

// Unparsed reports whether the page matched nothing on any axis.
func (c Classification) Unparsed() bool {
	return c.Courier == CourierUnknown && c.Style == StyleOther && c.Size == SizeNA
}

// Bundle is the deduplicated, size-ordered page list destined for one
// output document, grouping all pages of a courier+style pair.
type Bundle struct {
	Courier   string `json:"courier"`
	Style     string `json:"style"`
	Positions []int  `json:"positions"`
}

// DocumentName returns the stable output filename for the bundle.
// Downstream consumers sort printed packages by these names, so the
// format is part of the external contract.
func (b Bundle) DocumentName() string {
	return fmt.Sprintf("%s_%s.pdf", b.Courier, strings.ReplaceAll(b.Style, " ", "_"))
}

// SortedDocument is one materialized output PDF.
type SortedDocument struct {
	Name      string `json:"name"`
	Courier   string `json:"courier"`
	Style     string `json:"style"`
	PageCount int    `json:"pageCount"`
	Data      []byte `json:"-"`
}

// SortResult summarizes one sort run for the caller. Data buffers live in
// Documents; the JSON view carries only the metadata.
type SortResult struct {
	RunID          string           `json:"runId"`
	TotalPages     int              `json:"totalPages"`
	UnparsedCount  int              `json:"unparsedCount"`
	UnparsedSample []int            `json:"unparsedSample"`
	Documents      []SortedDocument `json:"documents"`
	ArchivedCount  int              `json:"archivedCount,omitempty"`
}
