// Package storage implements the object store used for vendor documents and
// shop photos on top of gocloud.dev blob buckets.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"meatly/config"
	domainerrors "meatly/internal/domain/errors"
	"meatly/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket URL scheme drivers.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/s3blob"
)

// bucketStore writes objects to a gocloud.dev bucket and exposes them under a
// public base URL.
type bucketStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// unconfiguredStore is the explicit implementation bound when no bucket URL is
// configured. Every upload fails with the same sentinel error so that callers
// fall back to local handles instead of probing the store's capabilities.
type unconfiguredStore struct{}

func (s *unconfiguredStore) Upload(_ context.Context, _ string, _ []byte, _ string) (string, error) {
	return "", domainerrors.ErrStorageUnconfigured
}

func (s *unconfiguredStore) IsRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// StoreParams holds dependencies for the ObjectStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewObjectStore selects the store implementation once at startup. A missing
// or empty bucket URL yields the unconfigured store; a bad URL is a hard
// startup failure, never a silent downgrade.
func NewObjectStore(params StoreParams) (service.ObjectStore, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	if cfg == nil || cfg.BucketURL == "" {
		logger.Warn("Object storage not configured, uploads will fall back to local handles")

		return &unconfiguredStore{}, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.BucketURL)
	}

	logger.Info("Object storage configured",
		slog.String("bucket_url", cfg.BucketURL),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing object storage bucket")

			return bucket.Close()
		},
	})

	return &bucketStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        logger,
	}, nil
}

// Upload writes the object and returns its public URL.
func (s *bucketStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrapf(err, "write object %s", key)
	}

	return s.publicBaseURL + "/" + key, nil
}

// IsRemote reports whether ref already points at stored content.
func (s *bucketStore) IsRemote(ref string) bool {
	if s.publicBaseURL != "" && strings.HasPrefix(ref, s.publicBaseURL) {
		return true
	}

	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// Module provides the storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewObjectStore),
)
