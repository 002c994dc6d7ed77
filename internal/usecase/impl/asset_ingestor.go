// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"time"

	"meatly/config"
	deliverycontext "meatly/internal/delivery/context"
	"meatly/internal/domain/entity"
	"meatly/internal/domain/service"
	"meatly/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultUploadAttempts = 3
	defaultUploadBackoff  = 200 * time.Millisecond
)

// assetIngestor moves wizard-submitted documents and photos into the object
// store. Ingestion never fails registration: an asset that cannot be uploaded
// keeps its client-local handle and the caller is told the result is degraded.
type assetIngestor struct {
	store    service.ObjectStore
	attempts int
	backoff  time.Duration
	logger   *slog.Logger
}

func newAssetIngestor(store service.ObjectStore, cfg *config.Config, logger *slog.Logger) *assetIngestor {
	attempts := defaultUploadAttempts
	backoff := defaultUploadBackoff
	if cfg != nil && cfg.Storage != nil {
		if cfg.Storage.UploadAttempts > 0 {
			attempts = cfg.Storage.UploadAttempts
		}
		if cfg.Storage.UploadBackoff > 0 {
			backoff = cfg.Storage.UploadBackoff
		}
	}

	return &assetIngestor{
		store:    store,
		attempts: attempts,
		backoff:  backoff,
		logger:   logger,
	}
}

func (ing *assetIngestor) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, ing.logger)
}

// ingest uploads one asset and returns its stored reference. A ref that is
// already remote passes through unchanged, making re-submission idempotent.
// When the upload fails after all attempts, the original local handle is
// returned and degraded is set.
func (ing *assetIngestor) ingest(ctx context.Context, key, ref, contentType string, data []byte) (string, bool) {
	if ref != "" && ing.store.IsRemote(ref) {
		return ref, false
	}

	localHandle := ref
	if localHandle == "" {
		localHandle = key
	}

	if len(data) == 0 {
		// Nothing to upload server-side; keep the handle as submitted.
		ing.log(ctx).Warn("Asset has no payload, keeping local handle",
			slog.String("key", key),
		)

		return localHandle, true
	}

	var lastErr error
	delay := ing.backoff
	for attempt := 1; attempt <= ing.attempts; attempt++ {
		url, err := ing.store.Upload(ctx, key, data, contentType)
		if err == nil {
			return url, false
		}
		lastErr = err

		if attempt < ing.attempts {
			select {
			case <-ctx.Done():
				ing.log(ctx).Warn("Asset upload canceled, keeping local handle",
					slog.String("key", key),
					slog.Any("error", ctx.Err()),
				)

				return localHandle, true
			case <-time.After(delay):
			}
			delay *= 2
		}
	}

	ing.log(ctx).Warn("Asset upload failed after retries, keeping local handle",
		slog.String("key", key),
		slog.Int("attempts", ing.attempts),
		slog.Any("error", lastErr),
	)

	return localHandle, true
}

// ingestDocuments uploads the wizard documents keyed by kind. It reports
// whether any document fell back to its local handle.
func (ing *assetIngestor) ingestDocuments(ctx context.Context, vendorID uuid.UUID, uploads []usecase.DocumentUpload) (entity.Documents, bool) {
	documents := make(entity.Documents, len(uploads))
	degraded := false

	for _, upload := range uploads {
		key := fmt.Sprintf("vendors/%s/documents/%s%s", vendorID, upload.Kind, path.Ext(upload.FileName))
		ref, fellBack := ing.ingest(ctx, key, upload.Ref, upload.ContentType, upload.Data)
		documents[upload.Kind] = ref
		degraded = degraded || fellBack
	}

	return documents, degraded
}

// ingestPhotos uploads the storefront photos in submission order. The result
// has the same length and order as the input.
func (ing *assetIngestor) ingestPhotos(ctx context.Context, vendorID uuid.UUID, uploads []usecase.PhotoUpload) ([]string, bool) {
	photos := make([]string, 0, len(uploads))
	degraded := false

	for i, upload := range uploads {
		key := fmt.Sprintf("vendors/%s/photos/%02d%s", vendorID, i, path.Ext(upload.FileName))
		ref, fellBack := ing.ingest(ctx, key, upload.Ref, upload.ContentType, upload.Data)
		photos = append(photos, ref)
		degraded = degraded || fellBack
	}

	return photos, degraded
}
