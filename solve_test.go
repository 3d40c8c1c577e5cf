// Package binpack3d_test validates the public Solve entry point.
// Focus:
//  1. Sentinel errors on malformed inputs (no boxes, too many, bad bin/box dims).
//  2. Correctness on small exact instances with a known optimal bin count.
//  3. Result.Proven is true whenever no budget cuts the search short.
//  4. Soft budgets (NodeLimit) still return a usable, validated incumbent.
package binpack3d_test

import (
	"testing"

	"github.com/katalvlaran/binpack3d"
	"github.com/katalvlaran/binpack3d/box"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dims(w, h, d int) box.Dims { return box.Dims{W: w, H: h, D: d} }

func TestSolveRejectsEmptyInput(t *testing.T) {
	_, err := binpack3d.Solve(dims(10, 10, 10), nil, binpack3d.DefaultOptions())
	require.ErrorIs(t, err, binpack3d.ErrNoBoxes)
}

func TestSolveRejectsTooManyBoxes(t *testing.T) {
	many := make([]box.Dims, 101)
	for i := range many {
		many[i] = dims(1, 1, 1)
	}
	_, err := binpack3d.Solve(dims(10, 10, 10), many, binpack3d.DefaultOptions())
	require.ErrorIs(t, err, binpack3d.ErrTooManyBoxes)
}

func TestSolveRejectsBadBinDims(t *testing.T) {
	_, err := binpack3d.Solve(dims(0, 10, 10), []box.Dims{dims(1, 1, 1)}, binpack3d.DefaultOptions())
	require.ErrorIs(t, err, binpack3d.ErrBadBinDims)
}

func TestSolveRejectsBoxLargerThanBin(t *testing.T) {
	_, err := binpack3d.Solve(dims(10, 10, 10), []box.Dims{dims(11, 1, 1)}, binpack3d.DefaultOptions())
	require.ErrorIs(t, err, binpack3d.ErrBadBoxDims)
}

func TestSolveSingleBoxUsesOneBin(t *testing.T) {
	bin := dims(10, 10, 10)
	result, err := binpack3d.Solve(bin, []box.Dims{dims(5, 5, 5)}, binpack3d.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Bins)
	assert.True(t, result.Proven)
	assert.Equal(t, 1, result.LowerBound)
	require.NoError(t, box.ValidatePacking(result.Boxes, bin))
}

func TestSolveStacksTwoBoxesInOneBin(t *testing.T) {
	bin := dims(10, 10, 10)
	in := []box.Dims{dims(10, 10, 5), dims(10, 10, 5)}
	result, err := binpack3d.Solve(bin, in, binpack3d.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Bins)
	assert.True(t, result.Proven)
	require.NoError(t, box.ValidatePacking(result.Boxes, bin))
	require.NoError(t, box.ValidateMultiset(boxesFromInput(in), result.Boxes))
}

func TestSolveFourQuadrantCubesFitOneBin(t *testing.T) {
	bin := dims(10, 10, 10)
	in := []box.Dims{dims(5, 5, 5), dims(5, 5, 5), dims(5, 5, 5), dims(5, 5, 5)}
	result, err := binpack3d.Solve(bin, in, binpack3d.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Bins)
	require.NoError(t, box.ValidatePacking(result.Boxes, bin))
}

// TestSolveForcesSeparateBins exercises the four-large-cubes scenario where
// no two boxes can ever share a bin (each box's extent exceeds half the
// bin's extent on every axis), so the optimum is one bin per box.
func TestSolveForcesSeparateBins(t *testing.T) {
	bin := dims(10, 10, 10)
	in := []box.Dims{dims(7, 7, 7), dims(7, 7, 7), dims(7, 7, 7), dims(7, 7, 7)}
	result, err := binpack3d.Solve(bin, in, binpack3d.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 4, result.Bins)
	assert.True(t, result.Proven)
	assert.Equal(t, result.Bins, result.LowerBound)
	require.NoError(t, box.ValidatePacking(result.Boxes, bin))
}

func TestSolveResultPreservesInputMultisetAndOrder(t *testing.T) {
	bin := dims(10, 10, 10)
	in := []box.Dims{dims(6, 6, 6), dims(1, 1, 1), dims(9, 9, 9)}
	result, err := binpack3d.Solve(bin, in, binpack3d.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, result.Boxes, len(in))
	for i, d := range in {
		assert.Equal(t, d, result.Boxes[i].Dims)
	}
}

func TestSolveNodeBudgetStillReturnsUsableIncumbent(t *testing.T) {
	bin := dims(10, 10, 10)
	in := make([]box.Dims, 20)
	for i := range in {
		in[i] = dims(3, 3, 3)
	}
	opts := binpack3d.DefaultOptions()
	opts.NodeLimit = 1

	result, err := binpack3d.Solve(bin, in, opts)
	require.NoError(t, err)
	require.NoError(t, box.ValidatePacking(result.Boxes, bin))
	assert.GreaterOrEqual(t, result.Bins, result.LowerBound)
}

func boxesFromInput(dims []box.Dims) []box.Box {
	out := make([]box.Box, len(dims))
	for i, d := range dims {
		out[i] = box.NewBox(i+1, d)
	}
	return out
}
