// Package blobx manages spooled binary payloads behind explicit
// handles. A Handle is the client-side stand-in for a browser object
// URL: it addresses an in-flight binary payload through a short-lived
// filesystem path and must be released by its owner when it stops
// being relevant. The spool keeps a live-handle count so tests and
// callers can verify nothing leaks.
package blobx

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
)

// Spool owns a directory for transient payload files.
type Spool struct {
	dir  string
	live atomic.Int64
	seq  atomic.Uint64
}

// NewSpool creates (if needed) the spool directory and returns a Spool
// over it.
func NewSpool(dir string) (*Spool, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return nil, fmt.Errorf("spool dir %s: %w", dir, err)
	}
	return &Spool{dir: dir}, nil
}

// Live returns the number of handles created by this spool that have
// not been released yet.
func (s *Spool) Live() int {
	return int(s.live.Load())
}

// Create writes data into a fresh spool file and returns its handle.
// The caller owns the handle and must call Release exactly when the
// payload stops being relevant; until then the file stays addressable.
func (s *Spool) Create(name string, data []byte) (*Handle, error) {
	n := s.seq.Add(1)
	path := filepath.Join(s.dir, fmt.Sprintf("%06d-%s", n, filepath.Base(name)))

	if err := os.WriteFile(path, data, 0o660); err != nil {
		return nil, fmt.Errorf("spool write %s: %w", path, err)
	}

	s.live.Add(1)
	return &Handle{spool: s, path: path, size: int64(len(data))}, nil
}

// Handle addresses one spooled payload. Release is idempotent; only the
// first call removes the file and decrements the spool's live count.
type Handle struct {
	spool *Spool
	path  string
	size  int64

	mu       sync.Mutex
	released bool
}

// Path returns the filesystem location of the payload, or an empty
// string once the handle has been released.
func (h *Handle) Path() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return ""
	}
	return h.path
}

// Size returns the payload length in bytes.
func (h *Handle) Size() int64 {
	return h.size
}

// Released reports whether Release has been called.
func (h *Handle) Released() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.released
}

// Release removes the spooled file. It never fails on repeat calls and
// tolerates the file already being gone.
func (h *Handle) Release() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return nil
	}
	h.released = true
	h.spool.live.Add(-1)

	if err := os.Remove(h.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("spool remove %s: %w", h.path, err)
	}
	return nil
}
