package box_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/binpack3d/box"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimsVolAndRotate(t *testing.T) {
	d := box.Dims{W: 2, H: 3, D: 5}
	require.Equal(t, int64(30), d.Vol())

	r1 := d.RotateDims()
	assert.Equal(t, box.Dims{W: 3, H: 5, D: 2}, r1)
	r2 := r1.RotateDims()
	r3 := r2.RotateDims()
	assert.Equal(t, d, r3, "three rotations must return to the original")
}

func TestBoxRotatePreservesVolumeAndCoords(t *testing.T) {
	b := box.NewBox(1, box.Dims{W: 2, H: 3, D: 4})
	b.Bin = 1
	b.Pos = box.Point{X: 1, Y: 2, Z: 3}

	r := b.RotateDims()
	assert.Equal(t, b.Vol, r.Vol)
	assert.Equal(t, box.Point{X: 2, Y: 3, Z: 1}, r.Pos)
}

func TestOverlaps(t *testing.T) {
	a := box.NewBox(1, box.Dims{W: 4, H: 4, D: 4})
	a.Bin = 1
	a.Pos = box.Point{X: 0, Y: 0, Z: 0}

	b := a
	b.No = 2
	b.Pos = box.Point{X: 2, Y: 2, Z: 2}
	assert.True(t, box.Overlaps(a, b))

	c := a
	c.No = 3
	c.Pos = box.Point{X: 4, Y: 0, Z: 0}
	assert.False(t, box.Overlaps(a, c), "touching faces are not an overlap")

	d := a
	d.No = 4
	d.Bin = 2
	d.Pos = box.Point{X: 0, Y: 0, Z: 0}
	assert.False(t, box.Overlaps(a, d), "different bins never overlap")
}

func TestValidatePackingCatchesEachInvariant(t *testing.T) {
	bin := box.Dims{W: 10, H: 10, D: 10}

	unplaced := []box.Box{box.NewBox(1, box.Dims{W: 1, H: 1, D: 1})}
	require.ErrorIs(t, box.ValidatePacking(unplaced, bin), box.ErrUnplaced)

	outside := []box.Box{box.NewBox(1, box.Dims{W: 5, H: 5, D: 5})}
	outside[0].Bin = 1
	outside[0].Pos = box.Point{X: 6, Y: 0, Z: 0}
	require.ErrorIs(t, box.ValidatePacking(outside, bin), box.ErrOutsideBin)

	a := box.NewBox(1, box.Dims{W: 6, H: 6, D: 6})
	a.Bin = 1
	b := box.NewBox(2, box.Dims{W: 6, H: 6, D: 6})
	b.Bin = 1
	overlapping := []box.Box{a, b}
	require.ErrorIs(t, box.ValidatePacking(overlapping, bin), box.ErrOverlap)

	dupA := box.NewBox(1, box.Dims{W: 1, H: 1, D: 1})
	dupA.Bin = 1
	dupB := dupA
	dupB.Pos = box.Point{X: 5, Y: 5, Z: 5}
	dup := []box.Box{dupA, dupB}
	require.ErrorIs(t, box.ValidatePacking(dup, bin), box.ErrDuplicateNo)

	okA := box.NewBox(1, box.Dims{W: 5, H: 5, D: 5})
	okA.Bin = 1
	okB := box.NewBox(2, box.Dims{W: 5, H: 5, D: 5})
	okB.Bin = 1
	okB.Pos = box.Point{X: 5, Y: 0, Z: 0}
	require.NoError(t, box.ValidatePacking([]box.Box{okA, okB}, bin))
}

func TestValidateMultiset(t *testing.T) {
	want := []box.Box{box.NewBox(1, box.Dims{W: 1, H: 1, D: 1}), box.NewBox(2, box.Dims{W: 1, H: 1, D: 1})}
	got := []box.Box{want[1], want[0]}
	assert.NoError(t, box.ValidateMultiset(want, got))

	missing := []box.Box{want[0]}
	assert.True(t, errors.Is(box.ValidateMultiset(want, missing), box.ErrWrongMultiset))
}
