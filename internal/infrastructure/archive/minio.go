// Package archive pushes sorted label documents to S3-compatible object
// storage so the packing floor can fetch them outside the HTTP session.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/labelsort/backend/internal/domain"
)

// Config holds the connection settings for the archive bucket.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
	Prefix    string
}

// MinioStore stores sorted documents in a MinIO/S3 bucket, one object per
// document under a per-run prefix.
type MinioStore struct {
	api    *minio.Client
	bucket string
	prefix string
}

var _ domain.ArchiveStore = (*MinioStore)(nil)

// NewMinioStore creates an archive store for the configured bucket.
func NewMinioStore(cfg Config) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrArchiveUnavailable, err)
	}
	return &MinioStore{
		api:    client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
	}, nil
}

// StoreDocument uploads one sorted PDF under <prefix>/<runID>/<name>.
func (s *MinioStore) StoreDocument(ctx context.Context, runID, name string, data []byte) error {
	key := path.Join(s.prefix, runID, name)
	_, err := s.api.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/pdf"})
	if err != nil {
		return fmt.Errorf("uploading %s: %w", key, err)
	}
	log.Printf("[ARCHIVE] stored %s (%d bytes)", key, len(data))
	return nil
}
