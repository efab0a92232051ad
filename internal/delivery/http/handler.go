package http

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/labelsort/backend/internal/domain"
	"github.com/labelsort/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	sorter  *usecase.SorterService
	results *ResultCache
}

// NewHandler creates a new HTTP handler
func NewHandler(sorter *usecase.SorterService, results *ResultCache) *Handler {
	return &Handler{
		sorter:  sorter,
		results: results,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "labelsort-backend",
		"version": "1.0.0",
	})
}

// documentResponse is the JSON view of one sorted document
type documentResponse struct {
	Name         string `json:"name"`
	Courier      string `json:"courier"`
	Style        string `json:"style"`
	PageCount    int    `json:"pageCount"`
	DownloadPath string `json:"downloadPath"`
}

// sortResponse is the JSON response for a sort run
type sortResponse struct {
	RunID          string             `json:"runId"`
	TotalPages     int                `json:"totalPages"`
	UnparsedCount  int                `json:"unparsedCount"`
	UnparsedSample []int              `json:"unparsedSample"`
	Documents      []documentResponse `json:"documents"`
	ArchivedCount  int                `json:"archivedCount,omitempty"`
	ArchivePath    string             `json:"archivePath"`
}

// SortLabels handles a multipart upload of one or more label PDFs,
// classifies every page, and responds with the run summary. The sorted
// documents stay in the result cache for download.
func (h *Handler) SortLabels(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid multipart form: %v", err)})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded, use multipart field 'files'"})
		return
	}

	documents := make([][]byte, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("reading %s: %v", fh.Filename, err)})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("reading %s: %v", fh.Filename, err)})
			return
		}
		documents = append(documents, data)
	}

	runID := uuid.NewString()
	result, err := h.sorter.Sort(c.Request.Context(), runID, documents)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoDocuments), errors.Is(err, domain.ErrInvalidDocument):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	h.results.Put(runID, result.Documents)

	resp := sortResponse{
		RunID:          result.RunID,
		TotalPages:     result.TotalPages,
		UnparsedCount:  result.UnparsedCount,
		UnparsedSample: result.UnparsedSample,
		Documents:      make([]documentResponse, 0, len(result.Documents)),
		ArchivedCount:  result.ArchivedCount,
		ArchivePath:    fmt.Sprintf("/api/v1/labels/runs/%s/archive.zip", result.RunID),
	}
	for _, doc := range result.Documents {
		resp.Documents = append(resp.Documents, documentResponse{
			Name:         doc.Name,
			Courier:      doc.Courier,
			Style:        doc.Style,
			PageCount:    doc.PageCount,
			DownloadPath: fmt.Sprintf("/api/v1/labels/runs/%s/documents/%s", result.RunID, doc.Name),
		})
	}

	c.JSON(http.StatusOK, resp)
}

// DownloadDocument streams one sorted PDF from a run.
func (h *Handler) DownloadDocument(c *gin.Context) {
	runID := c.Param("runID")
	name := c.Param("name")

	doc, err := h.results.Document(runID, name)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Name))
	c.Data(http.StatusOK, "application/pdf", doc.Data)
}

// DownloadArchive streams every document of a run as one zip file.
func (h *Handler) DownloadArchive(c *gin.Context) {
	runID := c.Param("runID")

	docs, err := h.results.Documents(runID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, doc := range docs {
		w, err := zw.Create(doc.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("building archive: %v", err)})
			return
		}
		if _, err := w.Write(doc.Data); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("building archive: %v", err)})
			return
		}
	}
	if err := zw.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("building archive: %v", err)})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", runID+"_sorted.zip"))
	c.Data(http.StatusOK, "application/zip", buf.Bytes())
}
