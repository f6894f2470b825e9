package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IcyeyeLOL/Pennwest-Connect/internal/blobx"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/api"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/common"
)

func TestFilenameFromDisposition(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{`attachment; filename="calc-notes.pdf"`, "calc-notes.pdf"},
		{`attachment; filename=plain.txt`, "plain.txt"},
		{`attachment`, ""},
		{``, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FilenameFromDisposition(tt.header), tt.header)
	}
}

func newDownload(t *testing.T, client *fakeClient) (*DownloadService, *blobx.Spool, string) {
	t.Helper()
	spool, err := blobx.NewSpool(t.TempDir())
	require.NoError(t, err)
	dir := t.TempDir()
	return NewDownloadService(client, spool, dir), spool, dir
}

func TestDownloadUsesDispositionFilename(t *testing.T) {
	client := &fakeClient{
		downloadFn: func(ctx context.Context, id int) (*api.Binary, error) {
			return &api.Binary{
				Data:               []byte("pdf-bytes"),
				ContentDisposition: `attachment; filename="calc-notes.pdf"`,
			}, nil
		},
	}
	svc, spool, dir := newDownload(t, client)

	dest, err := svc.Download(context.Background(), 1, "Fallback Title")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "calc-notes.pdf"), dest)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf-bytes"), data)

	assert.Equal(t, 0, spool.Live(), "download handle is released synchronously")
}

func TestDownloadFallsBackToTitle(t *testing.T) {
	client := &fakeClient{
		downloadFn: func(ctx context.Context, id int) (*api.Binary, error) {
			return &api.Binary{Data: []byte("x")}, nil
		},
	}
	svc, _, dir := newDownload(t, client)

	dest, err := svc.Download(context.Background(), 2, "My Notes")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "My Notes"), dest)
}

func TestDownloadFailureSurfacesError(t *testing.T) {
	client := &fakeClient{
		downloadFn: func(ctx context.Context, id int) (*api.Binary, error) {
			return nil, common.ErrUnavailable
		},
	}
	svc, spool, _ := newDownload(t, client)

	_, err := svc.Download(context.Background(), 3, "t")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnavailable))
	assert.Equal(t, 0, spool.Live())
}
