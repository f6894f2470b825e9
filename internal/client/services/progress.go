package services

import "sync"

// Upload progress checkpoints. The indicator only ever moves forward
// through these values and snaps back to zero when an attempt fails.
const (
	ProgressValidated = 10
	ProgressSending   = 30
	ProgressHeaders   = 70
	ProgressParsed    = 90
	ProgressDone      = 100
)

// Progress is a monotonic [0,100] indicator. Advance ignores values
// that would move it backwards; Reset is the only way down.
type Progress struct {
	mu       sync.Mutex
	value    int
	history  []int
	observer func(int)
}

// NewProgress returns a Progress that reports every accepted change to
// observer (which may be nil).
func NewProgress(observer func(int)) *Progress {
	return &Progress{observer: observer}
}

// Advance moves the indicator to v if that is forward progress.
func (p *Progress) Advance(v int) {
	p.mu.Lock()
	if v <= p.value || v > 100 {
		p.mu.Unlock()
		return
	}
	p.value = v
	p.history = append(p.history, v)
	obs := p.observer
	p.mu.Unlock()

	if obs != nil {
		obs(v)
	}
}

// Reset snaps the indicator back to zero.
func (p *Progress) Reset() {
	p.mu.Lock()
	p.value = 0
	obs := p.observer
	p.mu.Unlock()

	if obs != nil {
		obs(0)
	}
}

// Value returns the current indicator position.
func (p *Progress) Value() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value
}

// History returns every checkpoint the indicator passed through since
// creation, in order. Resets do not clear it.
func (p *Progress) History() []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]int, len(p.history))
	copy(out, p.history)
	return out
}
