package render

import "time"

// LoopStats summarizes render loop behaviour for instrumentation.
type LoopStats struct {
	Frames           uint64
	AvgGenerate      time.Duration
	AvgGenerateMicro float64
	LastPublish      time.Time
	LatestFrameAge   time.Duration
	Seq              uint64
}

// rateReporter implements the frame-rate sampling policy: a sample fires the
// first time t exceeds the deadline, and each fired deadline doubles.
//
// The doubling (next += next, not next += interval) matches the behaviour the
// tool has always had; reports thin out geometrically over a long run.
type rateReporter struct {
	next float64
}

func newRateReporter(initial float64) *rateReporter {
	if initial <= 0 {
		initial = 2
	}
	return &rateReporter{next: initial}
}

// sample reports the mean frame rate over the whole run when the deadline has
// passed. frames is the number of frames generated so far.
func (r *rateReporter) sample(t float64, frames uint64) (rate float64, fired bool) {
	if t <= r.next {
		return 0, false
	}
	r.next += r.next
	if t <= 0 {
		return 0, false
	}
	return float64(frames) / t, true
}
