package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"meatly/config"
	"meatly/internal/domain/entity"
	mockSvc "meatly/internal/mocks/service"
	"meatly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func fastIngestorConfig() *config.Config {
	return &config.Config{
		Storage: &config.StorageConfig{
			UploadAttempts: 2,
			UploadBackoff:  time.Millisecond,
		},
	}
}

func TestAssetIngestor_RemoteRefPassesThrough(t *testing.T) {
	store := mockSvc.NewMockObjectStore(t)
	ing := newAssetIngestor(store, fastIngestorConfig(), discardLogger())

	store.EXPECT().IsRemote("https://cdn.example.com/pan.pdf").Return(true)

	ref, degraded := ing.ingest(context.Background(), "vendors/x/documents/pan.pdf", "https://cdn.example.com/pan.pdf", "application/pdf", []byte("payload"))

	assert.Equal(t, "https://cdn.example.com/pan.pdf", ref)
	assert.False(t, degraded)
}

func TestAssetIngestor_UploadSuccess(t *testing.T) {
	store := mockSvc.NewMockObjectStore(t)
	ing := newAssetIngestor(store, fastIngestorConfig(), discardLogger())

	ctx := context.Background()
	store.EXPECT().
		Upload(ctx, "vendors/x/photos/00.jpg", []byte("img"), "image/jpeg").
		Return("https://cdn.example.com/photos/00.jpg", nil)

	ref, degraded := ing.ingest(ctx, "vendors/x/photos/00.jpg", "", "image/jpeg", []byte("img"))

	assert.Equal(t, "https://cdn.example.com/photos/00.jpg", ref)
	assert.False(t, degraded)
}

func TestAssetIngestor_RetriesThenFallsBackToLocalHandle(t *testing.T) {
	store := mockSvc.NewMockObjectStore(t)
	ing := newAssetIngestor(store, fastIngestorConfig(), discardLogger())

	ctx := context.Background()
	store.EXPECT().IsRemote("local://pan").Return(false)
	store.EXPECT().
		Upload(ctx, "vendors/x/documents/pan.pdf", []byte("doc"), "application/pdf").
		Return("", errors.New("bucket unavailable")).
		Times(2)

	ref, degraded := ing.ingest(ctx, "vendors/x/documents/pan.pdf", "local://pan", "application/pdf", []byte("doc"))

	assert.Equal(t, "local://pan", ref)
	assert.True(t, degraded)
}

func TestAssetIngestor_LocalRefUploadsWhenNotRemote(t *testing.T) {
	store := mockSvc.NewMockObjectStore(t)
	ing := newAssetIngestor(store, fastIngestorConfig(), discardLogger())

	ctx := context.Background()
	store.EXPECT().IsRemote("local://pan").Return(false)
	store.EXPECT().
		Upload(ctx, "vendors/x/documents/pan.pdf", []byte("doc"), "application/pdf").
		Return("https://cdn.example.com/pan.pdf", nil)

	ref, degraded := ing.ingest(ctx, "vendors/x/documents/pan.pdf", "local://pan", "application/pdf", []byte("doc"))

	assert.Equal(t, "https://cdn.example.com/pan.pdf", ref)
	assert.False(t, degraded)
}

func TestAssetIngestor_EmptyPayloadKeepsHandle(t *testing.T) {
	store := mockSvc.NewMockObjectStore(t)
	ing := newAssetIngestor(store, fastIngestorConfig(), discardLogger())

	ref, degraded := ing.ingest(context.Background(), "vendors/x/documents/pan.pdf", "", "application/pdf", nil)

	assert.Equal(t, "vendors/x/documents/pan.pdf", ref)
	assert.True(t, degraded)
}

func TestAssetIngestor_PhotosKeepSubmissionOrder(t *testing.T) {
	store := mockSvc.NewMockObjectStore(t)
	ing := newAssetIngestor(store, fastIngestorConfig(), discardLogger())

	ctx := context.Background()
	vendorID := uuid.New()

	uploads := []usecase.PhotoUpload{
		{FileName: "front.jpg", ContentType: "image/jpeg", Data: []byte("a")},
		{FileName: "counter.jpg", ContentType: "image/jpeg", Data: []byte("b")},
		{FileName: "board.jpg", ContentType: "image/jpeg", Data: []byte("c")},
	}
	for i := range uploads {
		key := fmt.Sprintf("vendors/%s/photos/%02d.jpg", vendorID, i)
		store.EXPECT().
			Upload(ctx, key, uploads[i].Data, "image/jpeg").
			Return(fmt.Sprintf("https://cdn.example.com/%02d.jpg", i), nil)
	}

	photos, degraded := ing.ingestPhotos(ctx, vendorID, uploads)

	assert.False(t, degraded)
	assert.Equal(t, []string{
		"https://cdn.example.com/00.jpg",
		"https://cdn.example.com/01.jpg",
		"https://cdn.example.com/02.jpg",
	}, photos)
}

func TestAssetIngestor_DocumentFailureDegradesBatch(t *testing.T) {
	store := mockSvc.NewMockObjectStore(t)
	ing := newAssetIngestor(store, fastIngestorConfig(), discardLogger())

	ctx := context.Background()
	vendorID := uuid.New()

	store.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), []byte("pan"), "application/pdf").
		Return("https://cdn.example.com/pan.pdf", nil)
	store.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), []byte("fssai"), "application/pdf").
		Return("", errors.New("bucket unavailable")).
		Times(2)

	documents, degraded := ing.ingestDocuments(ctx, vendorID, []usecase.DocumentUpload{
		{Kind: entity.DocumentPAN, FileName: "pan.pdf", ContentType: "application/pdf", Data: []byte("pan")},
		{Kind: entity.DocumentFSSAI, FileName: "fssai.pdf", ContentType: "application/pdf", Data: []byte("fssai")},
	})

	assert.True(t, degraded)
	assert.Equal(t, "https://cdn.example.com/pan.pdf", documents[entity.DocumentPAN])
	// The failed document keeps a deterministic local handle.
	assert.Contains(t, documents[entity.DocumentFSSAI], "documents/fssai")
}
