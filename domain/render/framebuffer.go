package render

import (
	"image"
	"sync"
	"time"
)

// FrameBuffer is a single-slot, latest-value-wins holder for the most recent
// stimulus frame. One producer (the render loop) publishes, one consumer (the
// UI presenter) reads; older frames are simply replaced, never queued.
//
// A plain non-reentrant mutex guards the slot. Both critical sections are a
// few field assignments; neither publishes I/O or computation under the lock.
type FrameBuffer struct {
	mu      sync.Mutex
	current FrameSnapshot
	hasData bool
}

// NewFrameBuffer returns an empty buffer.
func NewFrameBuffer() *FrameBuffer { return &FrameBuffer{} }

// Publish stores frame as the current snapshot, replacing any previous one.
// The caller must not modify frame afterwards.
func (b *FrameBuffer) Publish(frame *image.RGBA, elapsed float64) {
	if frame == nil {
		return
	}
	b.mu.Lock()
	b.current = FrameSnapshot{
		Image:       frame,
		Elapsed:     elapsed,
		PublishedAt: time.Now(),
		Seq:         b.current.Seq + 1,
	}
	b.hasData = true
	b.mu.Unlock()
}

// Read returns the current snapshot. ok is false until the first Publish.
func (b *FrameBuffer) Read() (FrameSnapshot, bool) {
	b.mu.Lock()
	snap, ok := b.current, b.hasData
	b.mu.Unlock()
	return snap, ok
}

var _ FrameSource = (*FrameBuffer)(nil)
