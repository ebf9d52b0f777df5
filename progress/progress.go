package progress

import "errors"

// ErrCanceled is returned by any phase function when its Handle reports
// cancellation mid-phase. Per spec.md §7, this unwinds the pipeline with no
// partial result visible to the caller.
var ErrCanceled = errors.New("progress: operation canceled")

// Handle is the cancellation + progress-reporting contract threaded through
// every single-threaded cooperative phase (cluster building, cluster
// connection, edge generation, vertex-cluster assignment, ideal-vector
// assignment, tetrahedron classification, mesh construction, circuit search,
// tracing — spec.md §5).
//
// Implementations must be safe to call from the single goroutine driving a
// phase; Handle is not used concurrently within the DXA pipeline (only
// Structure Analysis's per-atom classification is parallel, and that phase
// does not report fine-grained progress through this interface).
type Handle interface {
	// IsCanceled reports whether the caller has requested cancellation.
	// Any true result causes the enclosing phase to return ErrCanceled
	// without committing partial state.
	IsCanceled() bool

	// SetProgressMaximum sets the total unit count the current phase expects
	// to process, for callers rendering a progress bar.
	SetProgressMaximum(n int64)

	// SetProgressValue reports how many units have been processed so far.
	SetProgressValue(i int64)
}

// Nop is a Handle that never cancels and discards all progress updates.
type Nop struct{}

// IsCanceled always returns false.
func (Nop) IsCanceled() bool { return false }

// SetProgressMaximum is a no-op.
func (Nop) SetProgressMaximum(int64) {}

// SetProgressValue is a no-op.
func (Nop) SetProgressValue(int64) {}

// CheckCanceled is the one-line guard every phase loop calls at its
// intermittent check points: `if err := progress.CheckCanceled(h); err != nil
// { return err }`.
func CheckCanceled(h Handle) error {
	if h != nil && h.IsCanceled() {
		return ErrCanceled
	}
	return nil
}

// Throttled wraps a Handle so that SetProgressValue only forwards to the
// underlying handle every Interval units (default 1024, per spec.md §5),
// keeping per-iteration overhead negligible in hot loops.
type Throttled struct {
	Underlying Handle
	Interval   int64

	last int64
}

// NewThrottled returns a Throttled wrapping underlying with the default
// 1024-unit interval.
func NewThrottled(underlying Handle) *Throttled {
	return &Throttled{Underlying: underlying, Interval: 1024}
}

// IsCanceled forwards to the underlying handle.
func (t *Throttled) IsCanceled() bool {
	if t.Underlying == nil {
		return false
	}
	return t.Underlying.IsCanceled()
}

// SetProgressMaximum forwards to the underlying handle.
func (t *Throttled) SetProgressMaximum(n int64) {
	if t.Underlying != nil {
		t.Underlying.SetProgressMaximum(n)
	}
}

// SetProgressValue forwards to the underlying handle when i is at least
// Interval units past the last forwarded value, and whenever i == 0 (which
// resets the throttle). A last value closer than Interval to the previous
// forwarded one is not forwarded.
func (t *Throttled) SetProgressValue(i int64) {
	if t.Underlying == nil {
		return
	}
	interval := t.Interval
	if interval <= 0 {
		interval = 1024
	}
	if i-t.last >= interval || i == 0 {
		t.last = i
		t.Underlying.SetProgressValue(i)
	}
}
