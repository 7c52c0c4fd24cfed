package azure

import "context"

// BlobStorage stores rendered reports
type BlobStorage interface {
	UploadReport(ctx context.Context, name, contentType string, data []byte) (string, error)
	DownloadReport(ctx context.Context, blobName string) ([]byte, error)
}

var (
	_ BlobStorage = (*BlobStorageClient)(nil)
	_ BlobStorage = (*MockBlobStorageClient)(nil)
)
