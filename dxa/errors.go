package dxa

import "fmt"

// InvalidParametersError reports that the supplied Parameters fail the
// constraints Run requires before it will touch the pipeline (spec.md §7):
// MaxTrialCircuitSize must be at least 3 and no larger than
// MaxExtendedCircuitSize().
type InvalidParametersError struct {
	Reason string
}

func (e *InvalidParametersError) Error() string {
	return fmt.Sprintf("dxa: invalid parameters: %s", e.Reason)
}

// invariantViolated panics with a message identifying an internal
// assumption the pipeline expected to hold. Per spec.md §7 this is a
// debug-only assertion: it never fires on well-formed input produced by
// the packages Run calls, and exists only to fail loudly instead of
// silently corrupting output if one of them regresses.
func invariantViolated(format string, args ...interface{}) {
	panic(fmt.Sprintf("dxa: internal invariant violated: "+format, args...))
}
