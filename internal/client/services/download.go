package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/IcyeyeLOL/Pennwest-Connect/internal/blobx"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/api"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/filex"
)

var dispositionRe = regexp.MustCompile(`filename="?([^";]+)"?`)

// FilenameFromDisposition extracts the filename from a
// Content-Disposition header value, or returns an empty string when
// the pattern does not match.
func FilenameFromDisposition(header string) string {
	m := dispositionRe.FindStringSubmatch(header)
	if m == nil {
		return ""
	}
	return m[1]
}

// DownloadService saves note files to the configured download
// directory. Unlike previews, its spool handle is always short-lived:
// created, copied out, and released before Download returns.
type DownloadService struct {
	client api.Client
	spool  *blobx.Spool
	dir    string
}

func NewDownloadService(client api.Client, spool *blobx.Spool, dir string) *DownloadService {
	return &DownloadService{client: client, spool: spool, dir: dir}
}

// Download fetches the note's file and writes it into the download
// directory, deriving the name from the response's Content-Disposition
// header and falling back to the note title. It returns the saved
// path.
func (s *DownloadService) Download(ctx context.Context, noteID int, fallbackTitle string) (string, error) {
	bin, err := s.client.DownloadNote(ctx, noteID)
	if err != nil {
		return "", err
	}

	name := FilenameFromDisposition(bin.ContentDisposition)
	if name == "" {
		name = fallbackTitle
	}
	name = filex.SafeFileName(name)

	handle, err := s.spool.Create(name, bin.Data)
	if err != nil {
		return "", err
	}
	defer handle.Release()

	if _, err := filex.EnsureDir(s.dir); err != nil {
		return "", err
	}
	dest := filepath.Join(s.dir, name)

	data, err := os.ReadFile(handle.Path())
	if err != nil {
		return "", fmt.Errorf("reading spooled download: %w", err)
	}
	if err := os.WriteFile(dest, data, 0o660); err != nil {
		return "", fmt.Errorf("saving %s: %w", dest, err)
	}
	return dest, nil
}
