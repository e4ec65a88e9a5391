// Copyright (c) 2026 Avironin. All rights reserved.

/*
Package storage provides the object-storage client for uploaded assets.

White-paper PDFs live in a dedicated public bucket on an S3-compatible
store. Uploads are keyed by a millisecond timestamp plus the original file
extension so concurrent uploads cannot collide. Size and MIME restrictions
are bucket policy, configured once by the setup-storage maintenance op, and
deliberately not re-validated per upload.
*/
package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/avironin/insight-api/internal/platform/constants"
)

// Options configures the object storage connection.
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Client wraps a MinIO connection scoped to the white-paper bucket.
type Client struct {
	minio  *minio.Client
	bucket string
	logger *slog.Logger
}

// NewClient connects to the object store. It does not create the bucket;
// provisioning belongs to the setup-storage op.
func NewClient(opts Options, logger *slog.Logger) (*Client, error) {
	mc, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: failed to create client: %w", err)
	}

	bucket := opts.Bucket
	if bucket == "" {
		bucket = constants.WhitepaperBucket
	}

	return &Client{minio: mc, bucket: bucket, logger: logger}, nil
}

// UploadWhitepaper stores a PDF and returns its publicly resolvable URL.
//
// The object key is derived from the upload instant, never from the client
// filename, so repeated uploads of the same file do not overwrite each other.
func (c *Client) UploadWhitepaper(ctx context.Context, originalFilename string, data []byte) (string, error) {
	ext := filepath.Ext(originalFilename)
	if ext == "" {
		ext = ".pdf"
	}
	key := fmt.Sprintf("%d%s", time.Now().UnixMilli(), ext)

	_, err := c.minio.PutObject(ctx, c.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: constants.WhitepaperMimeType})
	if err != nil {
		return "", fmt.Errorf("storage: upload failed: %w", err)
	}

	url := c.PublicURL(key)
	c.logger.Info("whitepaper_uploaded",
		slog.String("key", key),
		slog.Int("bytes", len(data)),
	)

	return url, nil
}

// PublicURL resolves the public URL for an object key in the bucket.
func (c *Client) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", c.minio.EndpointURL().String(), c.bucket, key)
}

// Delete removes an uploaded object. Callers decide whether to clean up an
// orphaned asset after a failed post insert; nothing does so automatically.
func (c *Client) Delete(ctx context.Context, key string) error {
	if err := c.minio.RemoveObject(ctx, c.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("storage: delete failed: %w", err)
	}
	return nil
}

// BucketExists reports whether the white-paper bucket is provisioned.
func (c *Client) BucketExists(ctx context.Context) (bool, error) {
	exists, err := c.minio.BucketExists(ctx, c.bucket)
	if err != nil {
		return false, fmt.Errorf("storage: bucket check failed: %w", err)
	}
	return exists, nil
}

// EnsureBucket idempotently creates the white-paper bucket.
func (c *Client) EnsureBucket(ctx context.Context) error {
	exists, err := c.BucketExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		c.logger.Info("bucket_already_exists", slog.String("bucket", c.bucket))
		return nil
	}

	if err := c.minio.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("storage: bucket creation failed: %w", err)
	}

	c.logger.Info("bucket_created", slog.String("bucket", c.bucket))
	return nil
}

// Bucket returns the configured bucket name.
func (c *Client) Bucket() string {
	return c.bucket
}
