package onebin_test

import (
	"testing"

	"github.com/katalvlaran/binpack3d/box"
	"github.com/katalvlaran/binpack3d/onebin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillPlacesEverythingWhenItFits(t *testing.T) {
	bin := box.Dims{W: 10, H: 10, D: 10}
	items := []box.Dims{
		{W: 5, H: 5, D: 5},
		{W: 5, H: 5, D: 5},
		{W: 5, H: 5, D: 5},
		{W: 5, H: 5, D: 5},
	}
	idx, coords, all := onebin.Fill(bin, items)
	require.True(t, all)
	require.Len(t, idx, len(items))
	require.Len(t, coords, len(items))

	boxes := make([]box.Box, len(idx))
	for k, i := range idx {
		b := box.NewBox(i+1, items[i])
		b.Bin = 1
		b.Pos = coords[k]
		boxes[k] = b
	}
	assert.NoError(t, box.ValidatePacking(boxes, bin))
}

func TestFillKeepsBestPartialWhenOverflowing(t *testing.T) {
	bin := box.Dims{W: 10, H: 10, D: 10}
	items := []box.Dims{
		{W: 8, H: 8, D: 8},
		{W: 8, H: 8, D: 8},
		{W: 8, H: 8, D: 8},
	}
	idx, coords, all := onebin.Fill(bin, items)
	assert.False(t, all)
	assert.Len(t, idx, 1, "only one 8-cube can ever share this bin")
	require.Len(t, coords, 1)
}

func TestFillEmptyInput(t *testing.T) {
	idx, coords, all := onebin.Fill(box.Dims{W: 10, H: 10, D: 10}, nil)
	assert.Nil(t, idx)
	assert.Nil(t, coords)
	assert.True(t, all)
}
