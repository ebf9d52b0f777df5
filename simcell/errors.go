package simcell

import (
	"errors"
	"fmt"
)

// ErrDegenerateCell indicates the simulation cell matrix has (numerically)
// zero determinant/volume and cannot host a coordinate basis change.
var ErrDegenerateCell = errors.New("simcell: degenerate (zero-volume) cell")

// errSimulationCellTooSmall is the sentinel TooSmallError wraps so callers
// can branch on the kind with IsTooSmall without needing to type-assert
// TooSmallError.
var errSimulationCellTooSmall = errors.New("simcell: cell too small along periodic dimension")

// TooSmallError reports that some input edge spans more than half a
// periodic image along dimension Dim (0=x, 1=y, 2=z) — spec.md §6's single
// unrecoverable failure kind, SimulationCellTooSmall(dim).
type TooSmallError struct {
	// Dim is the offending periodic axis (0, 1, or 2).
	Dim int
}

// Error implements the error interface.
func (e *TooSmallError) Error() string {
	return fmt.Sprintf("simcell: simulation cell too small along dimension %d: an edge spans more than half the periodic image", e.Dim)
}

// Unwrap lets errors.Is(err, errSimulationCellTooSmall) match any
// *TooSmallError regardless of which dimension triggered it.
func (e *TooSmallError) Unwrap() error {
	return errSimulationCellTooSmall
}

// IsTooSmall reports whether err is (or wraps) a TooSmallError.
func IsTooSmall(err error) bool {
	return errors.Is(err, errSimulationCellTooSmall)
}
