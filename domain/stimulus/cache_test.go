package stimulus

import (
	"image"
	"testing"
)

func TestFrameCache_RequiresIntegralFlickerCycles(t *testing.T) {
	if c := newFrameCache(4, 4); c == nil {
		t.Fatalf("duration 4s at 4Hz (16 cycles) should be cacheable")
	}
	if c := newFrameCache(4, 4.3); c != nil {
		t.Fatalf("fractional cycles per sweep must disable the cache")
	}
	if c := newFrameCache(0, 4); c != nil {
		t.Fatalf("zero duration must disable the cache")
	}
}

func TestFrameCache_KeyIsPeriodic(t *testing.T) {
	c := newFrameCache(4, 4)
	if c.key(0.5) != c.key(4.5) {
		t.Fatalf("keys one period apart should match")
	}
	if c.key(0.5) == c.key(1.5) {
		t.Fatalf("distinct phases should map to distinct keys")
	}
}

func TestFrameCache_StoreLookup(t *testing.T) {
	c := newFrameCache(4, 4)
	frame := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if _, ok := c.lookup(1.0); ok {
		t.Fatalf("lookup before store should miss")
	}
	c.store(1.0, frame)
	got, ok := c.lookup(5.0) // one period later
	if !ok || got != frame {
		t.Fatalf("expected cached frame one period later")
	}
}

func TestFrameCache_NilReceiverSafe(t *testing.T) {
	var c *frameCache
	if _, ok := c.lookup(1.0); ok {
		t.Fatalf("nil cache should always miss")
	}
	c.store(1.0, image.NewRGBA(image.Rect(0, 0, 1, 1))) // must not panic
}
