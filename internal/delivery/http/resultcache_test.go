package http

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/labelsort/backend/internal/domain"
)

func TestResultCache(t *testing.T) {
	docs := []domain.SortedDocument{
		{Name: "Shadowfax_Jumpsuit.pdf", Courier: "Shadowfax", Style: "Jumpsuit", PageCount: 3, Data: []byte("pdf-a")},
		{Name: "Valmo_Crop_Hoodie.pdf", Courier: "Valmo", Style: "Crop Hoodie", PageCount: 1, Data: []byte("pdf-b")},
	}

	t.Run("stores and retrieves documents", func(t *testing.T) {
		cache := NewResultCache(time.Minute, 10)
		cache.Put("run-1", docs)

		doc, err := cache.Document("run-1", "Shadowfax_Jumpsuit.pdf")
		if err != nil {
			t.Fatalf("Document() error = %v", err)
		}
		if string(doc.Data) != "pdf-a" {
			t.Errorf("Data = %q, want pdf-a", doc.Data)
		}
	})

	t.Run("preserves emission order", func(t *testing.T) {
		cache := NewResultCache(time.Minute, 10)
		cache.Put("run-1", docs)

		all, err := cache.Documents("run-1")
		if err != nil {
			t.Fatalf("Documents() error = %v", err)
		}
		if len(all) != 2 || all[0].Name != "Shadowfax_Jumpsuit.pdf" || all[1].Name != "Valmo_Crop_Hoodie.pdf" {
			t.Errorf("Documents() = %v, want original order", all)
		}
	})

	t.Run("unknown run", func(t *testing.T) {
		cache := NewResultCache(time.Minute, 10)
		if _, err := cache.Document("missing", "x.pdf"); !errors.Is(err, domain.ErrRunNotFound) {
			t.Errorf("error = %v, want ErrRunNotFound", err)
		}
	})

	t.Run("unknown document in existing run", func(t *testing.T) {
		cache := NewResultCache(time.Minute, 10)
		cache.Put("run-1", docs)
		if _, err := cache.Document("run-1", "missing.pdf"); !errors.Is(err, domain.ErrDocumentNotFound) {
			t.Errorf("error = %v, want ErrDocumentNotFound", err)
		}
	})

	t.Run("expired run behaves as missing", func(t *testing.T) {
		cache := NewResultCache(time.Millisecond, 10)
		cache.Put("run-1", docs)
		time.Sleep(5 * time.Millisecond)

		if _, err := cache.Document("run-1", "Shadowfax_Jumpsuit.pdf"); !errors.Is(err, domain.ErrRunNotFound) {
			t.Errorf("error = %v, want ErrRunNotFound after expiry", err)
		}
	})

	t.Run("evicts oldest run beyond the cap", func(t *testing.T) {
		cache := NewResultCache(time.Minute, 2)
		for i := 0; i < 3; i++ {
			cache.Put(fmt.Sprintf("run-%d", i), docs)
			time.Sleep(2 * time.Millisecond) // distinct createdAt
		}

		if _, err := cache.Documents("run-0"); !errors.Is(err, domain.ErrRunNotFound) {
			t.Errorf("run-0 error = %v, want ErrRunNotFound after eviction", err)
		}
		if _, err := cache.Documents("run-2"); err != nil {
			t.Errorf("run-2 error = %v, want nil", err)
		}
	})
}
