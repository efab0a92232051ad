package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/labelsort/backend/internal/domain"
)

// SorterConfig holds configuration for the sorter service
type SorterConfig struct {
	EnableDebugLogging bool
}

// SorterService runs the full pipeline for one uploaded batch: merge,
// per-page text extraction, classification, hierarchy construction,
// bundle assembly, and document materialization via the collaborators.
type SorterService struct {
	registry   *Registry
	classifier *Classifier
	extractor  domain.TextExtractor
	collector  domain.PageCollector
	archive    domain.ArchiveStore // optional, may be nil
	debug      bool
}

// NewSorterService creates a sorter service. archive may be nil to
// disable archiving.
func NewSorterService(
	registry *Registry,
	extractor domain.TextExtractor,
	collector domain.PageCollector,
	archive domain.ArchiveStore,
	config SorterConfig,
) *SorterService {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &SorterService{
		registry:   registry,
		classifier: NewClassifier(registry),
		extractor:  extractor,
		collector:  collector,
		archive:    archive,
		debug:      config.EnableDebugLogging,
	}
}

// Sort processes one uploaded batch of PDF documents and returns the
// sorted output documents plus the unparsed-page report.
//
// Collaborator failures (unreadable PDF, serialization failure) propagate
// unchanged. Classification itself never fails: a page that matches
// nothing is recorded as unparsed, not dropped.
func (s *SorterService) Sort(ctx context.Context, runID string, documents [][]byte) (*domain.SortResult, error) {
	if len(documents) == 0 {
		return nil, domain.ErrNoDocuments
	}

	merged := documents[0]
	if len(documents) > 1 {
		var err error
		merged, err = s.collector.Merge(ctx, documents)
		if err != nil {
			return nil, fmt.Errorf("merging %d documents: %w", len(documents), err)
		}
	}

	texts, err := s.extractor.PageTexts(ctx, merged)
	if err != nil {
		return nil, fmt.Errorf("extracting page text: %w", err)
	}

	pages := make([]domain.PageRecord, len(texts))
	for i, text := range texts {
		pages[i] = domain.PageRecord{Position: i, RawText: text}
	}

	hierarchy, unparsed := BuildHierarchy(pages, s.classifier)
	bundles := AssembleBundles(hierarchy, s.registry)

	if s.debug {
		log.Printf("[SORT] run=%s pages=%d bundles=%d unparsed=%d",
			runID, len(pages), len(bundles), len(unparsed))
	}

	result := &domain.SortResult{
		RunID:          runID,
		TotalPages:     len(pages),
		UnparsedCount:  len(unparsed),
		UnparsedSample: samplePositions(unparsed, 10),
		Documents:      make([]domain.SortedDocument, 0, len(bundles)),
	}

	for _, bundle := range bundles {
		data, err := s.collector.Collect(ctx, merged, bundle.Positions)
		if err != nil {
			return nil, fmt.Errorf("materializing %s: %w", bundle.DocumentName(), err)
		}
		doc := domain.SortedDocument{
			Name:      bundle.DocumentName(),
			Courier:   bundle.Courier,
			Style:     bundle.Style,
			PageCount: len(bundle.Positions),
			Data:      data,
		}
		result.Documents = append(result.Documents, doc)

		if s.archive != nil {
			if err := s.archive.StoreDocument(ctx, runID, doc.Name, data); err != nil {
				// Archiving is best-effort: the caller still gets the
				// documents over HTTP.
				log.Printf("[SORT] run=%s archive failed for %s: %v", runID, doc.Name, err)
				continue
			}
			result.ArchivedCount++
		}
	}

	return result, nil
}

// samplePositions returns at most n leading positions, never nil, so the
// JSON report always carries an array.
func samplePositions(positions []int, n int) []int {
	if len(positions) > n {
		positions = positions[:n]
	}
	out := make([]int, len(positions))
	copy(out, positions)
	return out
}
