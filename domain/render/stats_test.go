package render

import "testing"

func TestRateReporter_NeverFiresBeforeInitialInterval(t *testing.T) {
	r := newRateReporter(2)
	for _, tt := range []float64{0, 0.5, 1.9, 2.0} {
		if _, fired := r.sample(tt, 100); fired {
			t.Fatalf("report fired at t=%v, before the initial interval", tt)
		}
	}
}

func TestRateReporter_DeadlineStrictlyDoubles(t *testing.T) {
	r := newRateReporter(2)

	// First report just past 2s; deadlines then double: 4, 8, 16.
	if _, fired := r.sample(2.1, 210); !fired {
		t.Fatalf("expected report just past initial deadline")
	}
	if _, fired := r.sample(3.9, 390); fired {
		t.Fatalf("deadline should have doubled to 4s")
	}
	if _, fired := r.sample(4.1, 410); !fired {
		t.Fatalf("expected report just past 4s")
	}
	if _, fired := r.sample(7.9, 790); fired {
		t.Fatalf("deadline should have doubled to 8s")
	}
	if _, fired := r.sample(8.1, 810); !fired {
		t.Fatalf("expected report just past 8s")
	}
}

func TestRateReporter_RateIsFramesOverElapsed(t *testing.T) {
	r := newRateReporter(2)
	rate, fired := r.sample(4.0, 240)
	if !fired {
		t.Fatalf("expected report at t=4")
	}
	if rate != 60 {
		t.Fatalf("expected 240/4 = 60 fps, got %v", rate)
	}
}

func TestRateReporter_ZeroInitialDefaultsToTwoSeconds(t *testing.T) {
	r := newRateReporter(0)
	if _, fired := r.sample(1.0, 10); fired {
		t.Fatalf("default initial interval should be 2s")
	}
	if _, fired := r.sample(2.5, 10); !fired {
		t.Fatalf("expected report past default 2s deadline")
	}
}
