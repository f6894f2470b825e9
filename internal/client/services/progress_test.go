package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressMonotonic(t *testing.T) {
	p := NewProgress(nil)

	p.Advance(10)
	p.Advance(30)
	p.Advance(30) // repeat ignored
	p.Advance(20) // regression ignored
	p.Advance(70)

	assert.Equal(t, 70, p.Value())
	assert.Equal(t, []int{10, 30, 70}, p.History())
}

func TestProgressReset(t *testing.T) {
	var observed []int
	p := NewProgress(func(v int) { observed = append(observed, v) })

	p.Advance(10)
	p.Advance(30)
	p.Reset()
	p.Advance(10)

	assert.Equal(t, 10, p.Value())
	assert.Equal(t, []int{10, 30, 0, 10}, observed)
}

func TestProgressRejectsOutOfRange(t *testing.T) {
	p := NewProgress(nil)
	p.Advance(120)
	assert.Equal(t, 0, p.Value())
}
