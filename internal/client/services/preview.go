package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/IcyeyeLOL/Pennwest-Connect/internal/blobx"
	"github.com/IcyeyeLOL/Pennwest-Connect/internal/client/api"
)

// Kind classifies a note file into its preview mode.
type Kind string

const (
	KindPDF         Kind = "pdf"
	KindImage       Kind = "image"
	KindText        Kind = "text"
	KindUnsupported Kind = "unsupported"
)

// Classify derives the preview mode from the lowercase extension of
// the note's stored path.
func Classify(path string) Kind {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "pdf":
		return KindPDF
	case "png", "jpg", "jpeg", "gif", "webp":
		return KindImage
	case "txt":
		return KindText
	default:
		return KindUnsupported
	}
}

// PreviewStatus is the lifecycle phase of the open preview.
type PreviewStatus int

const (
	PreviewClosed PreviewStatus = iota
	PreviewLoading
	PreviewReady
	PreviewError
)

// PreviewSnapshot is a read-only view of the current preview state.
type PreviewSnapshot struct {
	NoteID  int
	Title   string
	Kind    Kind
	Status  PreviewStatus
	Message string

	// Text carries the payload for text previews.
	Text string
	// FilePath addresses the spooled payload for pdf/image previews;
	// empty otherwise.
	FilePath string
}

type previewState struct {
	noteID  int
	title   string
	kind    Kind
	status  PreviewStatus
	message string
	text    string
	handle  *blobx.Handle
	gen     uint64
}

// PreviewService owns the preview lifecycle. At most one payload
// handle is alive at any time: opening a new preview supersedes the
// old one, and a superseded fetch that completes late releases its own
// payload instead of touching current state. Closing always releases.
type PreviewService struct {
	client api.Client
	spool  *blobx.Spool

	mu  sync.Mutex
	gen uint64
	cur *previewState
}

func NewPreviewService(client api.Client, spool *blobx.Spool) *PreviewService {
	return &PreviewService{client: client, spool: spool}
}

// Open starts a preview for the given note and blocks until it is
// ready, failed, or superseded by a newer Open/Close. The returned
// snapshot describes the outcome; a superseded call reports
// PreviewClosed.
func (s *PreviewService) Open(ctx context.Context, noteID int, title, notePath string) PreviewSnapshot {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.releaseCurrentLocked()
	st := &previewState{
		noteID: noteID,
		title:  title,
		kind:   Classify(notePath),
		status: PreviewLoading,
		gen:    gen,
	}
	s.cur = st
	s.mu.Unlock()

	if st.kind == KindUnsupported {
		// terminal no-preview presentation, no network call
		return s.commit(gen, st, PreviewReady, "", "", nil)
	}

	data, err := s.client.PreviewNote(ctx, noteID)
	if err != nil {
		return s.commit(gen, st, PreviewError, PreviewErrorMessage(err), "", nil)
	}

	if st.kind == KindText {
		return s.commit(gen, st, PreviewReady, "", string(data), nil)
	}

	name := fmt.Sprintf("preview-%d%s", noteID, strings.ToLower(filepath.Ext(notePath)))
	handle, err := s.spool.Create(name, data)
	if err != nil {
		return s.commit(gen, st, PreviewError, "Failed to load preview. Please try downloading the file instead.", "", nil)
	}
	return s.commit(gen, st, PreviewReady, "", "", handle)
}

// commit installs the fetch outcome unless a newer generation took
// over in the meantime; a stale completion must not leak its payload
// or disturb the current preview.
func (s *PreviewService) commit(gen uint64, st *previewState, status PreviewStatus, message, text string, handle *blobx.Handle) PreviewSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		if handle != nil {
			_ = handle.Release()
		}
		return PreviewSnapshot{Status: PreviewClosed}
	}

	st.status = status
	st.message = message
	st.text = text
	st.handle = handle
	return snapshotOf(st)
}

// Current returns the present preview state; PreviewClosed when none
// is open.
func (s *PreviewService) Current() PreviewSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur == nil {
		return PreviewSnapshot{Status: PreviewClosed}
	}
	return snapshotOf(s.cur)
}

// Close tears the preview down and releases its payload. Closing a
// closed preview is a no-op; an in-flight fetch becomes stale.
func (s *PreviewService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.releaseCurrentLocked()
}

func (s *PreviewService) releaseCurrentLocked() {
	if s.cur == nil {
		return
	}
	if s.cur.handle != nil {
		_ = s.cur.handle.Release()
		s.cur.handle = nil
	}
	s.cur = nil
}

func snapshotOf(st *previewState) PreviewSnapshot {
	snap := PreviewSnapshot{
		NoteID:  st.noteID,
		Title:   st.title,
		Kind:    st.kind,
		Status:  st.status,
		Message: st.message,
		Text:    st.text,
	}
	if st.handle != nil {
		snap.FilePath = st.handle.Path()
	}
	return snap
}

// PreviewErrorMessage maps a preview fetch failure to display text: a
// decoded server detail is shown verbatim, anything else collapses to
// the generic message. The error presentation always offers download
// as the fallback.
func PreviewErrorMessage(err error) string {
	var se *api.StatusError
	if errors.As(err, &se) {
		if msg := se.Detail.Message(); msg != "" {
			return msg
		}
	}
	return "Failed to load preview. Please try downloading the file instead."
}
