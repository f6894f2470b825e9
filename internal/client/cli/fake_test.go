package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IcyeyeLOL/Pennwest-Connect/internal/blobx"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/api"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/config"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/models"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/logging"
)

type fakeClient struct {
	loginFn    func(ctx context.Context, email, password string) (string, error)
	registerFn func(ctx context.Context, email, username, password string) (string, error)
	meFn       func(ctx context.Context) (*models.User, error)
	listFn     func(ctx context.Context, scope api.NoteScope) ([]models.Note, error)
	detailFn   func(ctx context.Context, id int) (*models.NoteDetail, error)
	uploadFn   func(ctx context.Context, form api.UploadForm, ev api.UploadEvents) (*models.Note, error)
	previewFn  func(ctx context.Context, id int) ([]byte, error)
	downloadFn func(ctx context.Context, id int) (*api.Binary, error)
	likeFn     func(ctx context.Context, id int) (bool, error)
	commentFn  func(ctx context.Context, id int, content string) error
	deleteFn   func(ctx context.Context, id int) error
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, error) {
	return f.loginFn(ctx, email, password)
}

func (f *fakeClient) Register(ctx context.Context, email, username, password string) (string, error) {
	return f.registerFn(ctx, email, username, password)
}

func (f *fakeClient) Me(ctx context.Context) (*models.User, error) {
	return f.meFn(ctx)
}

func (f *fakeClient) ListNotes(ctx context.Context, scope api.NoteScope) ([]models.Note, error) {
	return f.listFn(ctx, scope)
}

func (f *fakeClient) NoteDetail(ctx context.Context, id int) (*models.NoteDetail, error) {
	return f.detailFn(ctx, id)
}

func (f *fakeClient) UploadNote(ctx context.Context, form api.UploadForm, ev api.UploadEvents) (*models.Note, error) {
	return f.uploadFn(ctx, form, ev)
}

func (f *fakeClient) PreviewNote(ctx context.Context, id int) ([]byte, error) {
	return f.previewFn(ctx, id)
}

func (f *fakeClient) DownloadNote(ctx context.Context, id int) (*api.Binary, error) {
	return f.downloadFn(ctx, id)
}

func (f *fakeClient) ToggleLike(ctx context.Context, id int) (bool, error) {
	return f.likeFn(ctx, id)
}

func (f *fakeClient) AddComment(ctx context.Context, id int, content string) error {
	return f.commentFn(ctx, id, content)
}

func (f *fakeClient) DeleteNote(ctx context.Context, id int) error {
	return f.deleteFn(ctx, id)
}

type memTokens struct {
	token string
}

func (m *memTokens) Token() (string, bool) { return m.token, m.token != "" }
func (m *memTokens) Save(t string) error   { m.token = t; return nil }
func (m *memTokens) Clear() error          { m.token = ""; return nil }

// newTestApp builds an App over the fake client, scripted stdin and a
// captured stdout. A non-empty token makes the session resolvable.
func newTestApp(t *testing.T, fc api.Client, tokens *memTokens, input string) (*App, *bytes.Buffer) {
	t.Helper()

	dir := t.TempDir()
	spool, err := blobx.NewSpool(filepath.Join(dir, "spool"))
	require.NoError(t, err)

	cfg := &config.Config{APIBaseURL: "http://localhost:8000"}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	out := &bytes.Buffer{}
	app := newApp(cfg, logger, fc, tokens, spool, filepath.Join(dir, "downloads"), bufio.NewReader(strings.NewReader(input)), out)
	return app, out
}

func authedClient(user *models.User) *fakeClient {
	return &fakeClient{
		meFn: func(ctx context.Context) (*models.User, error) { return user, nil },
	}
}
