package http

import (
	"sync"
	"time"

	"github.com/labelsort/backend/internal/domain"
)

// cachedRun holds the generated documents of one sort run with expiration
type cachedRun struct {
	documents map[string]domain.SortedDocument
	order     []string
	createdAt time.Time
	expiresAt time.Time
}

// ResultCache is a thread-safe in-memory store for sorted documents,
// keyed by run id. It bridges the gap between the sort call and the
// download calls, with TTL expiry and a cap on retained runs.
type ResultCache struct {
	runs    map[string]*cachedRun
	mutex   sync.RWMutex
	ttl     time.Duration
	maxRuns int
}

// NewResultCache creates a result cache. A zero ttl defaults to 30
// minutes, a zero maxRuns to 100.
func NewResultCache(ttl time.Duration, maxRuns int) *ResultCache {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if maxRuns <= 0 {
		maxRuns = 100
	}

	cache := &ResultCache{
		runs:    make(map[string]*cachedRun),
		ttl:     ttl,
		maxRuns: maxRuns,
	}

	// Remove expired runs periodically
	go cache.cleanupExpired()

	return cache
}

// Put stores the documents of one run.
func (c *ResultCache) Put(runID string, documents []domain.SortedDocument) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	run := &cachedRun{
		documents: make(map[string]domain.SortedDocument, len(documents)),
		createdAt: time.Now(),
		expiresAt: time.Now().Add(c.ttl),
	}
	for _, doc := range documents {
		if _, exists := run.documents[doc.Name]; !exists {
			run.order = append(run.order, doc.Name)
		}
		run.documents[doc.Name] = doc
	}
	c.runs[runID] = run

	if len(c.runs) > c.maxRuns {
		c.evictOldestLocked()
	}
}

// Document returns one named document of a run.
func (c *ResultCache) Document(runID, name string) (domain.SortedDocument, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	run, exists := c.runs[runID]
	if !exists || time.Now().After(run.expiresAt) {
		return domain.SortedDocument{}, domain.ErrRunNotFound
	}
	doc, exists := run.documents[name]
	if !exists {
		return domain.SortedDocument{}, domain.ErrDocumentNotFound
	}
	return doc, nil
}

// Documents returns all documents of a run in emission order.
func (c *ResultCache) Documents(runID string) ([]domain.SortedDocument, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	run, exists := c.runs[runID]
	if !exists || time.Now().After(run.expiresAt) {
		return nil, domain.ErrRunNotFound
	}
	docs := make([]domain.SortedDocument, 0, len(run.order))
	for _, name := range run.order {
		docs = append(docs, run.documents[name])
	}
	return docs, nil
}

// evictOldestLocked drops the oldest run. Caller holds the write lock.
func (c *ResultCache) evictOldestLocked() {
	var oldestID string
	var oldestAt time.Time
	for id, run := range c.runs {
		if oldestID == "" || run.createdAt.Before(oldestAt) {
			oldestID = id
			oldestAt = run.createdAt
		}
	}
	if oldestID != "" {
		delete(c.runs, oldestID)
	}
}

// cleanupExpired removes expired runs every minute
func (c *ResultCache) cleanupExpired() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mutex.Lock()
		now := time.Now()
		for id, run := range c.runs {
			if now.After(run.expiresAt) {
				delete(c.runs, id)
			}
		}
		c.mutex.Unlock()
	}
}
