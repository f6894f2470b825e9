package services

import (
	"context"

	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/api"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/models"
)

// fakeClient implements api.Client for service unit tests. Unset
// function fields mean the method is not expected in that test.
type fakeClient struct {
	loginFn    func(ctx context.Context, email, password string) (string, error)
	registerFn func(ctx context.Context, email, username, password string) (string, error)
	meFn       func(ctx context.Context) (*models.User, error)

	listFn     func(ctx context.Context, scope api.NoteScope) ([]models.Note, error)
	detailFn   func(ctx context.Context, id int) (*models.NoteDetail, error)
	uploadFn   func(ctx context.Context, form api.UploadForm, ev api.UploadEvents) (*models.Note, error)
	previewFn  func(ctx context.Context, id int) ([]byte, error)
	downloadFn func(ctx context.Context, id int) (*api.Binary, error)

	likeFn    func(ctx context.Context, id int) (bool, error)
	commentFn func(ctx context.Context, id int, content string) error
	deleteFn  func(ctx context.Context, id int) error

	uploadCalls  int
	previewCalls int
}

var _ api.Client = (*fakeClient)(nil)

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
	f.uploadCalls++
	return f.uploadFn(ctx, form, ev)
}

func (f *fakeClient) PreviewNote(ctx context.Context, id int) ([]byte, error) {
	f.previewCalls++
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
