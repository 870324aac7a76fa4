package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"path"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/yoockh/chatrelay/internal/models"
)

// GCSStore writes each record as its own immutable object.
type GCSStore struct {
	client *gcs.Client
	bucket string
	prefix string
}

func NewGCSStore(ctx context.Context, bucket, prefix string, opts ...option.ClientOption) (*GCSStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("gcs bucket is required")
	}
	c, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &GCSStore{client: c, bucket: bucket, prefix: prefix}, nil
}

func (s *GCSStore) Name() string { return "gcs" }

func (s *GCSStore) Close() error { return s.client.Close() }

func (s *GCSStore) Append(ctx context.Context, rec *models.InteractionRecord) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	// DoesNotExist keeps objects write-once
	obj := s.client.Bucket(s.bucket).Object(ObjectName(s.prefix, rec)).If(gcs.Conditions{DoesNotExist: true})
	w := obj.NewWriter(ctx)
	w.ContentType = "application/json"

	if _, err := w.Write(body); err != nil {
		_ = w.Close()
		return fmt.Errorf("write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize object: %w", err)
	}
	return nil
}

// ObjectName places records under prefix/YYYY/MM/DD/<id>.json.
func ObjectName(prefix string, rec *models.InteractionRecord) string {
	return path.Join(prefix, rec.RecordedAt.UTC().Format("2006/01/02"), rec.ID+".json")
}
