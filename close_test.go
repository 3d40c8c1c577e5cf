package binpack3d

import (
	"testing"

	"github.com/katalvlaran/binpack3d/box"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryCloseCommitsAFullBin(t *testing.T) {
	bin := box.Dims{W: 10, H: 10, D: 10}
	dims := []box.Dims{{W: 5, H: 5, D: 5}, {W: 5, H: 5, D: 5}, {W: 5, H: 5, D: 5}, {W: 5, H: 5, D: 5}}
	s := newState(bin, dims, DefaultOptions())
	for i := range s.boxes {
		s.boxes[i].Bin = 1
	}

	closed := s.tryClose()
	require.True(t, closed)
	assert.True(t, s.isClosed[1])
	assert.Equal(t, 1, s.noc)
	require.NoError(t, box.ValidatePacking(s.boxes, bin))
}

func TestTryCloseSkipsBinsBelowHalfVolume(t *testing.T) {
	bin := box.Dims{W: 10, H: 10, D: 10}
	dims := []box.Dims{{W: 2, H: 2, D: 2}}
	s := newState(bin, dims, DefaultOptions())
	s.boxes[0].Bin = 1

	closed := s.tryClose()
	assert.False(t, closed)
	assert.False(t, s.isClosed[1])
	assert.Equal(t, 0, s.noc)
}

func TestTryCloseRespectsDepthCap(t *testing.T) {
	bin := box.Dims{W: 10, H: 10, D: 10}
	dims := []box.Dims{{W: 5, H: 5, D: 5}, {W: 5, H: 5, D: 5}}
	s := newState(bin, dims, DefaultOptions())
	for i := range s.boxes {
		s.boxes[i].Bin = 1
	}
	s.closeDepth = maxClose

	closed := s.tryClose()
	assert.False(t, closed)
}

func TestSnapshotRestoreRoundTrips(t *testing.T) {
	bin := box.Dims{W: 10, H: 10, D: 10}
	dims := []box.Dims{{W: 1, H: 1, D: 1}, {W: 2, H: 2, D: 2}}
	s := newState(bin, dims, DefaultOptions())
	s.boxes[0].Bin = 1
	s.noc = 0

	snap := s.snapshot()
	s.boxes[0].Bin = 7
	s.isClosed[1] = true
	s.noc = 3

	s.restore(snap)
	assert.Equal(t, 1, s.boxes[0].Bin)
	assert.False(t, s.isClosed[1])
	assert.Equal(t, 0, s.noc)
}
