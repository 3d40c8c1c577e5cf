package heuristic_test

import (
	"testing"

	"github.com/katalvlaran/binpack3d/box"
	"github.com/katalvlaran/binpack3d/heuristic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toBoxes(dims []box.Dims, res heuristic.Result) []box.Box {
	boxes := make([]box.Box, len(dims))
	for i, d := range dims {
		b := box.NewBox(i+1, d)
		b.Bin = res.Placements[i].Bin
		b.Pos = res.Placements[i].Pos
		boxes[i] = b
	}
	return boxes
}

func TestLayerHeuristicUnitBoxes(t *testing.T) {
	bin := box.Dims{W: 10, H: 10, D: 10}
	dims := make([]box.Dims, 7)
	for i := range dims {
		dims[i] = box.Dims{W: 1, H: 1, D: 1}
	}
	res := heuristic.Layer(bin, dims)
	require.True(t, res.Bins >= 1)
	assert.NoError(t, box.ValidatePacking(toBoxes(dims, res), bin))
}

func TestMCutHeuristicUnitBoxes(t *testing.T) {
	bin := box.Dims{W: 10, H: 10, D: 10}
	dims := make([]box.Dims, 7)
	for i := range dims {
		dims[i] = box.Dims{W: 1, H: 1, D: 1}
	}
	res := heuristic.MCut(bin, dims)
	require.GreaterOrEqual(t, res.Bins, 1)
	assert.NoError(t, box.ValidatePacking(toBoxes(dims, res), bin))
}

func TestBestPicksSmallerIncumbent(t *testing.T) {
	bin := box.Dims{W: 10, H: 10, D: 10}
	dims := []box.Dims{
		{W: 10, H: 10, D: 5},
		{W: 10, H: 10, D: 5},
	}
	res := heuristic.Best(bin, dims)
	assert.Equal(t, 1, res.Bins)
	assert.NoError(t, box.ValidatePacking(toBoxes(dims, res), bin))
}

func TestLayerHeuristicExcessLargeBoxes(t *testing.T) {
	bin := box.Dims{W: 10, H: 10, D: 10}
	dims := []box.Dims{
		{W: 10, H: 10, D: 6},
		{W: 10, H: 10, D: 6},
		{W: 10, H: 10, D: 6},
	}
	res := heuristic.Layer(bin, dims)
	assert.Equal(t, 3, res.Bins)
	assert.NoError(t, box.ValidatePacking(toBoxes(dims, res), bin))
}
