package packing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eugenenazirov/cube-packer/internal/geometry"
)

func mustCube(t *testing.T, dim int) *Cube {
	t.Helper()
	c, err := NewCube(dim)
	require.NoError(t, err)
	return c
}

func TestNewContainerRejectsNonPositiveDimensions(t *testing.T) {
	t.Parallel()

	for _, dims := range [][3]int{{0, 1, 1}, {1, -1, 1}, {1, 1, 0}, {-2, -2, -2}} {
		_, err := NewContainer(dims[0], dims[1], dims[2])
		require.ErrorIs(t, err, ErrInvalidDimension, "dims %v", dims)
	}
}

func TestNewCubeRejectsNonPositiveDim(t *testing.T) {
	t.Parallel()

	for _, dim := range []int{0, -1, -10} {
		_, err := NewCube(dim)
		require.ErrorIs(t, err, ErrInvalidDimension, "dim %d", dim)
	}
}

func TestVolumeConservation(t *testing.T) {
	t.Parallel()

	box, err := NewContainer(4, 4, 4)
	require.NoError(t, err)
	require.Equal(t, 64, box.Volume())
	require.Equal(t, box.Volume(), box.FilledVolume()+box.UnfilledVolume())

	positions := []geometry.Position{
		{X: 0, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 0, Y: 2, Z: 0},
		{X: 0, Y: 0, Z: 2},
	}
	for _, at := range positions {
		c := mustCube(t, 2)
		require.True(t, box.Fits(c, at))
		require.NoError(t, box.Commit(c, at))
		require.Equal(t, box.Volume(), box.FilledVolume()+box.UnfilledVolume(),
			"conservation broken after commit at %v", at)
	}
	require.Equal(t, 32, box.FilledVolume())
	require.Equal(t, 4, box.PlacedCount())
}

func TestFitsIsPure(t *testing.T) {
	t.Parallel()

	box, err := NewContainer(3, 3, 3)
	require.NoError(t, err)

	first := mustCube(t, 2)
	require.NoError(t, box.Commit(first, geometry.Position{}))

	// Overlapping candidate: rejected and the cube stays untouched.
	c := mustCube(t, 2)
	require.False(t, box.Fits(c, geometry.Position{X: 1}))
	require.False(t, c.Placed())
	_, ok := c.Position()
	require.False(t, ok)

	// Out-of-bounds candidate behaves the same way.
	require.False(t, box.Fits(c, geometry.Position{X: 2}))
	require.False(t, c.Placed())
}

func TestFitsBounds(t *testing.T) {
	t.Parallel()

	box, err := NewContainer(4, 3, 2)
	require.NoError(t, err)
	c := mustCube(t, 2)

	tests := []struct {
		name string
		at   geometry.Position
		want bool
	}{
		{"Origin", geometry.Position{}, true},
		{"FlushAgainstFarCorner", geometry.Position{X: 2, Y: 1, Z: 0}, true},
		{"PastLength", geometry.Position{X: 3}, false},
		{"PastWidth", geometry.Position{Y: 2}, false},
		{"PastHeight", geometry.Position{Z: 1}, false},
		{"NegativeCoordinate", geometry.Position{X: -1}, false},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, box.Fits(c, tc.at), tc.name)
	}
}

func TestCommitRejectsRecommit(t *testing.T) {
	t.Parallel()

	box, err := NewContainer(4, 4, 4)
	require.NoError(t, err)

	c := mustCube(t, 2)
	require.NoError(t, box.Commit(c, geometry.Position{}))
	err = box.Commit(c, geometry.Position{X: 2})
	require.ErrorIs(t, err, ErrAlreadyPlaced)

	// The failed commit must not disturb volumes or the placed list.
	require.Equal(t, 8, box.FilledVolume())
	require.Equal(t, 1, box.PlacedCount())
	at, ok := c.Position()
	require.True(t, ok)
	require.Equal(t, geometry.Position{}, at)
}

func TestCommitRejectsOverCapacity(t *testing.T) {
	t.Parallel()

	box, err := NewContainer(2, 2, 2)
	require.NoError(t, err)

	err = box.Commit(mustCube(t, 3), geometry.Position{})
	require.ErrorIs(t, err, ErrCapacityExceeded)
	require.Equal(t, 0, box.FilledVolume())
	require.Equal(t, 8, box.UnfilledVolume())
}

func TestPlacedCubesNeverOverlap(t *testing.T) {
	t.Parallel()

	box, err := NewContainer(4, 4, 4)
	require.NoError(t, err)
	cubes, err := BuildCubes([]int{8, 4}, Descending)
	require.NoError(t, err)

	New().Pack(box, cubes)

	placed := box.Placed()
	for i, a := range placed {
		for _, b := range placed[i+1:] {
			require.False(t, a.Overlaps(b), "cubes at %v and %v overlap", a.pos, b.pos)
		}
		for _, axis := range geometry.Axes {
			require.GreaterOrEqual(t, a.pos.Along(axis), 0)
			require.LessOrEqual(t, a.pos.Along(axis)+a.Dim(), box.extent(axis))
		}
	}
}

func TestUnplacedCubesOverlapNothing(t *testing.T) {
	t.Parallel()

	a := mustCube(t, 2)
	b := mustCube(t, 2)
	require.False(t, a.Overlaps(b))

	box, err := NewContainer(4, 4, 4)
	require.NoError(t, err)
	require.NoError(t, box.Commit(b, geometry.Position{}))
	require.False(t, a.Overlaps(b), "unplaced cube must not overlap a placed one")
	require.False(t, b.Overlaps(a))
}
