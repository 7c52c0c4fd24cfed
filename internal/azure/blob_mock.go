package azure

import (
	"bytes"
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// MockBlobStorageClient is an in-memory BlobStorage for tests
type MockBlobStorageClient struct {
	mu           sync.RWMutex
	storage      map[string][]byte
	contentTypes map[string]string
	logger       *zap.Logger
}

// NewMockBlobStorageClient creates a new mock blob storage client
func NewMockBlobStorageClient(logger *zap.Logger) *MockBlobStorageClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MockBlobStorageClient{
		storage:      make(map[string][]byte),
		contentTypes: make(map[string]string),
		logger:       logger,
	}
}

// UploadReport stores a copy of data in memory
func (c *MockBlobStorageClient) UploadReport(ctx context.Context, name, contentType string, data []byte) (string, error) {
	blobName, err := reportBlobName(name)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.storage[blobName] = bytes.Clone(data)
	c.contentTypes[blobName] = contentType
	c.logger.Debug("mock: report uploaded", zap.String("blob_name", blobName), zap.Int("size_bytes", len(data)))

	return blobName, nil
}

// DownloadReport returns a copy of a stored report
func (c *MockBlobStorageClient) DownloadReport(ctx context.Context, blobName string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	data, ok := c.storage[blobName]
	if !ok {
		return nil, ErrBlobNotFound
	}
	return bytes.Clone(data), nil
}

// ContentType returns the content type a blob was uploaded with
func (c *MockBlobStorageClient) ContentType(blobName string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.contentTypes[blobName]
}

// ListBlobs returns all blob names in storage, sorted
func (c *MockBlobStorageClient) ListBlobs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	blobs := make([]string, 0, len(c.storage))
	for name := range c.storage {
		blobs = append(blobs, name)
	}
	sort.Strings(blobs)
	return blobs
}
