package dxa_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dxacore/dxacore/dxa"
	"github.com/dxacore/dxacore/mat3"
	"github.com/dxacore/dxacore/params"
	"github.com/dxacore/dxacore/progress"
	"github.com/dxacore/dxacore/simcell"
)

type emptyTessellation struct{}

func (emptyTessellation) CellCount() int          { return 0 }
func (emptyTessellation) CellVertices(int) [4]int { return [4]int{} }
func (emptyTessellation) IsGhost(int) bool        { return false }

// S5: a 0-atom input yields an empty (but valid) result set with zero total
// line length.
func TestRunEmptyInput(t *testing.T) {
	cell, err := simcell.New(mat3.Identity(), [3]bool{true, true, true})
	require.NoError(t, err)

	res, err := dxa.Run(nil, cell, emptyTessellation{}, params.New(), progress.Nop{})
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Empty(t, res.Network.Segments)
	require.Empty(t, res.DefectMesh.Faces())
	require.Equal(t, 0.0, res.Attributes.TotalLineLength)
	require.Len(t, res.ClusterGraph.Clusters(), 1) // only the null cluster
}

func TestRunRejectsTooSmallCircuitSize(t *testing.T) {
	cell, err := simcell.New(mat3.Identity(), [3]bool{true, true, true})
	require.NoError(t, err)

	p := params.New(params.WithMaxTrialCircuitSize(2))
	_, err = dxa.Run(nil, cell, emptyTessellation{}, p, progress.Nop{})
	require.Error(t, err)

	var target *dxa.InvalidParametersError
	require.ErrorAs(t, err, &target)
}

func TestRunRejectsDegenerateCell(t *testing.T) {
	zero := mat3.Matrix3{}
	// simcell.New itself rejects a zero-determinant matrix, so build a cell
	// through a degenerate-looking-but-invertible path isn't possible here;
	// instead exercise Run's own defense-in-depth check directly against
	// the zero value a caller might construct by mistake without going
	// through simcell.New.
	cell := simcell.SimulationCell{CellMatrix: zero}
	_, err := dxa.Run(nil, cell, emptyTessellation{}, params.New(), progress.Nop{})
	require.ErrorIs(t, err, simcell.ErrDegenerateCell)
}

func TestRunReturnsCanceledImmediately(t *testing.T) {
	cell, err := simcell.New(mat3.Identity(), [3]bool{true, true, true})
	require.NoError(t, err)

	_, err = dxa.Run(nil, cell, emptyTessellation{}, params.New(), canceledHandle{})
	require.ErrorIs(t, err, progress.ErrCanceled)
}

type canceledHandle struct{ progress.Nop }

func (canceledHandle) IsCanceled() bool { return true }
