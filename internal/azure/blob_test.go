package azure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewBlobStorageClient(t *testing.T) {
	logger := zap.NewNop()

	tests := []struct {
		name          string
		accountName   string
		accountKey    string
		endpoint      string
		containerName string
		wantErr       bool
	}{
		{
			name:          "valid configuration",
			accountName:   "testaccount",
			accountKey:    "dGVzdGtleQ==", // base64 encoded "testkey"
			containerName: "health-reports",
		},
		{
			name:          "custom endpoint",
			accountName:   "devstoreaccount1",
			accountKey:    "dGVzdGtleQ==",
			endpoint:      "http://127.0.0.1:10000/devstoreaccount1",
			containerName: "health-reports",
		},
		{
			name:          "missing account name",
			accountKey:    "dGVzdGtleQ==",
			containerName: "health-reports",
			wantErr:       true,
		},
		{
			name:          "missing account key",
			accountName:   "testaccount",
			containerName: "health-reports",
			wantErr:       true,
		},
		{
			name:        "missing container name",
			accountName: "testaccount",
			accountKey:  "dGVzdGtleQ==",
			wantErr:     true,
		},
		{
			name:          "invalid account key format",
			accountName:   "testaccount",
			accountKey:    "invalid-key-format",
			containerName: "health-reports",
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewBlobStorageClient(tt.accountName, tt.accountKey, tt.endpoint, tt.containerName, logger)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.containerName, client.containerName)
		})
	}
}

func TestReportBlobName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{name: "user/2024-05.pdf", want: "reports/user/2024-05.pdf"},
		{name: "../../etc/passwd", want: "reports/etc/passwd"},
		{name: "", wantErr: true},
		{name: "/", wantErr: true},
		{name: "dir/", wantErr: true},
	}

	for _, tt := range tests {
		got, err := reportBlobName(tt.name)
		if tt.wantErr {
			assert.Error(t, err, tt.name)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestBlobStorageClient_RejectsInvalidNamesBeforeNetwork(t *testing.T) {
	client, err := NewBlobStorageClient("testaccount", "dGVzdGtleQ==", "", "health-reports", zap.NewNop())
	require.NoError(t, err)

	_, err = client.UploadReport(context.Background(), "", "application/pdf", []byte("data"))
	assert.Error(t, err)

	_, err = client.DownloadReport(context.Background(), "audio/recording.wav")
	assert.Error(t, err)
}

func TestBlobStorageClient_ContextCancellation(t *testing.T) {
	client, err := NewBlobStorageClient("testaccount", "dGVzdGtleQ==", "", "health-reports", zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.UploadReport(ctx, "test.pdf", "application/pdf", []byte("data"))
	assert.Error(t, err)

	_, err = client.DownloadReport(ctx, "reports/test.pdf")
	assert.Error(t, err)
}

func TestMockBlobStorageClient_RoundTrip(t *testing.T) {
	mock := NewMockBlobStorageClient(nil)
	ctx := context.Background()
	data := []byte("%PDF-1.3")

	blobName, err := mock.UploadReport(ctx, "user-1/report.pdf", "application/pdf", data)
	require.NoError(t, err)
	assert.Equal(t, "reports/user-1/report.pdf", blobName)

	// mutating the caller's slice must not change the stored copy
	data[0] = 'X'

	got, err := mock.DownloadReport(ctx, blobName)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), got)
	assert.Equal(t, "application/pdf", mock.ContentType(blobName))
	assert.Equal(t, []string{blobName}, mock.ListBlobs())

	_, err = mock.DownloadReport(ctx, "reports/missing.pdf")
	assert.ErrorIs(t, err, ErrBlobNotFound)
}
