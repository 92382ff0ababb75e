package pipeline

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Timings records recompute wall times in an HDR histogram so the status bar
// can show how the dashboard is holding up against growing inputs.
type Timings struct {
	mu   sync.Mutex
	hist *hdrhistogram.Histogram
}

// TimingSummary is a point-in-time readout of the recorded runs.
type TimingSummary struct {
	Count int64
	P50   time.Duration
	P95   time.Duration
	Max   time.Duration
}

// NewTimings tracks durations from 1µs to 10min at 3 significant figures.
func NewTimings() *Timings {
	return &Timings{
		hist: hdrhistogram.New(1, 10*time.Minute.Microseconds(), 3),
	}
}

func (t *Timings) Record(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	_ = t.hist.RecordValue(d.Microseconds())
}

func (t *Timings) Summary() TimingSummary {
	t.mu.Lock()
	defer t.mu.Unlock()

	return TimingSummary{
		Count: t.hist.TotalCount(),
		P50:   time.Duration(t.hist.ValueAtQuantile(50)) * time.Microsecond,
		P95:   time.Duration(t.hist.ValueAtQuantile(95)) * time.Microsecond,
		Max:   time.Duration(t.hist.Max()) * time.Microsecond,
	}
}
