// Package services contains the application services of the Pennwest
// Connect client: upload, preview, download, and note browsing. Each
// service sits over the api.Client transport interface and owns the
// stateful behavior of its screen.
package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/api"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/models"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/common"
)

// ValidationError is a pre-flight rejection: no network call was made.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// SelectedFile is a locally chosen file held for one upload attempt.
type SelectedFile struct {
	Name string
	Size int64
	Data []byte
}

// LoadLocalFile reads a file from disk into a SelectedFile.
func LoadLocalFile(path string) (*SelectedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &SelectedFile{
		Name: filepath.Base(path),
		Size: int64(len(data)),
		Data: data,
	}, nil
}

// PendingUpload is the form state of one upload attempt. The file is
// kept on failure so the user can retry without re-selecting.
type PendingUpload struct {
	File        *SelectedFile
	Title       string
	ClassName   string
	Description string
}

// UploadService validates and submits note uploads, driving the staged
// progress indicator.
type UploadService struct {
	client   api.Client
	progress *Progress
}

func NewUploadService(client api.Client, observer func(int)) *UploadService {
	return &UploadService{client: client, progress: NewProgress(observer)}
}

// Progress exposes the indicator for rendering and tests.
func (s *UploadService) Progress() *Progress {
	return s.progress
}

// Validate runs the pre-submission checks in order, stopping at the
// first failure. It never touches the network.
func (s *UploadService) Validate(p *PendingUpload) error {
	if p.File == nil {
		return ValidationError("Please select a file to upload")
	}
	if p.File.Size > common.MaxFileSize {
		return ValidationError(fmt.Sprintf("File too large. Maximum size: %d MB", common.MaxFileSize/1024/1024))
	}
	ext := strings.ToLower(filepath.Ext(p.File.Name))
	if !allowedExtension(ext) {
		return ValidationError("File type not allowed. Allowed types: " + strings.Join(common.AllowedExtensions, ", "))
	}
	if strings.TrimSpace(p.Title) == "" || strings.TrimSpace(p.ClassName) == "" {
		return ValidationError("Please fill in all required fields")
	}
	return nil
}

func allowedExtension(ext string) bool {
	for _, allowed := range common.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Submit validates, then transmits the upload as multipart form data,
// advancing the progress indicator through its checkpoints. On any
// failure the indicator resets to zero and the pending state is left
// untouched; UploadErrorMessage turns the returned error into the
// message the form should show.
func (s *UploadService) Submit(ctx context.Context, p *PendingUpload) (*models.Note, error) {
	if err := s.Validate(p); err != nil {
		return nil, err
	}
	s.progress.Advance(ProgressValidated)

	form := api.UploadForm{
		FileName:    p.File.Name,
		FileData:    p.File.Data,
		Title:       strings.TrimSpace(p.Title),
		ClassName:   strings.TrimSpace(p.ClassName),
		Description: strings.TrimSpace(p.Description),
	}

	s.progress.Advance(ProgressSending)
	note, err := s.client.UploadNote(ctx, form, api.UploadEvents{
		OnResponse: func() { s.progress.Advance(ProgressHeaders) },
		OnParsed:   func() { s.progress.Advance(ProgressParsed) },
	})
	if err != nil {
		s.progress.Reset()
		return nil, err
	}

	s.progress.Advance(ProgressDone)
	return note, nil
}

// UploadErrorMessage maps a Submit failure to its user-facing text.
// Transport failures, malformed response bodies, and server validation
// errors each get a distinct message.
func UploadErrorMessage(err error) string {
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	if errors.Is(err, common.ErrUnavailable) {
		return "Network error. Please try again."
	}
	if errors.Is(err, common.ErrBadResponse) {
		return "Unexpected response from server. Please try again."
	}
	var se *api.StatusError
	if errors.As(err, &se) {
		if msg := se.Detail.Message(); msg != "" {
			return msg
		}
	}
	return "Upload failed. Please check your input and try again."
}
