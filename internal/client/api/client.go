// Package api implements the REST transport to the Pennwest Connect
// backend: URL resolution against a normalized base address, bearer
// token injection, and decoding of the backend's error envelope.
package api

import (
	"context"

	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/models"
)

// NoteScope selects which listing endpoint to query.
type NoteScope string

const (
	// ScopeMine lists the authenticated user's own notes.
	ScopeMine NoteScope = "mine"
	// ScopeGlobal lists all shared notes.
	ScopeGlobal NoteScope = "global"
	// ScopeRecent lists recent notes and works without authentication.
	ScopeRecent NoteScope = "recent"
)

// UploadForm carries the multipart fields of a note upload.
type UploadForm struct {
	FileName    string
	FileData    []byte
	Title       string
	ClassName   string
	Description string
}

// UploadEvents lets the caller observe transport milestones of an
// upload. Either callback may be nil.
type UploadEvents struct {
	// OnResponse fires when response headers have been received.
	OnResponse func()
	// OnParsed fires when the response body has been parsed.
	OnParsed func()
}

// Binary is a binary response body plus the metadata needed to name it.
type Binary struct {
	Data               []byte
	ContentDisposition string
}

// Client is the backend API surface the services depend on.
//
// All methods honor context cancellation. Non-2xx responses surface as
// *StatusError; transport failures wrap common.ErrUnavailable.
type Client interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, username, password string) (string, error)
	Me(ctx context.Context) (*models.User, error)

	ListNotes(ctx context.Context, scope NoteScope) ([]models.Note, error)
	NoteDetail(ctx context.Context, id int) (*models.NoteDetail, error)
	UploadNote(ctx context.Context, form UploadForm, ev UploadEvents) (*models.Note, error)
	PreviewNote(ctx context.Context, id int) ([]byte, error)
	DownloadNote(ctx context.Context, id int) (*Binary, error)

	ToggleLike(ctx context.Context, id int) (bool, error)
	AddComment(ctx context.Context, id int, content string) error
	DeleteNote(ctx context.Context, id int) error
}

// TokenSource supplies the bearer token attached to authenticated
// requests. The second return is false when no token is stored.
type TokenSource interface {
	Token() (string, bool)
}
