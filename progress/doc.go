// Package progress defines the cancellation + progress-reporting contract
// every single-threaded cooperative DXA phase accepts, grounded on a
// context-threading shape seen elsewhere in this codebase's flow-control
// algorithms: a long-running phase checks for cancellation at
// loop-granularity rather than per-element. spec.md §5 calls this
// collaborator "a PromiseBase-shaped collaborator exposing isCanceled(),
// setProgressValue(i), and setProgressMaximum(n)"; this package is that
// shape translated to Go.
//
// The package offers:
//   - Handle: the interface every phase function accepts.
//   - Nop: a Handle that never cancels and discards progress — the default
//     for tests and single-shot library calls that don't need cancellation.
//   - Throttled: wraps a Handle so progress updates are only forwarded every
//     N units (spec.md: "Progress is updated only intermittently (e.g. every
//     1024 units) to keep overhead negligible").
//   - ErrCanceled: the sentinel error phases return when Handle.IsCanceled()
//     trips mid-phase, matching spec.md §7's Canceled error kind ("Unwind, no
//     partial result").
package progress
