package packing

import "github.com/eugenenazirov/cube-packer/internal/geometry"

// Container is a fixed-size box that accumulates placed cubes. It tracks
// filled and unfilled volume so that their sum always equals the container
// volume, and keeps placed cubes in commit order for candidate generation.
type Container struct {
	length int
	width  int
	height int

	filled   int
	unfilled int
	placed   []*Cube
}

// NewContainer creates an empty container with the given dimensions.
func NewContainer(length, width, height int) (*Container, error) {
	if length <= 0 || width <= 0 || height <= 0 {
		return nil, ErrInvalidDimension
	}
	return &Container{
		length:   length,
		width:    width,
		height:   height,
		unfilled: length * width * height,
	}, nil
}

// Length returns the container extent along the X axis.
func (b *Container) Length() int { return b.length }

// Width returns the container extent along the Y axis.
func (b *Container) Width() int { return b.width }

// Height returns the container extent along the Z axis.
func (b *Container) Height() int { return b.height }

// Volume returns the total container volume.
func (b *Container) Volume() int {
	return b.length * b.width * b.height
}

// FilledVolume returns the volume occupied by placed cubes.
func (b *Container) FilledVolume() int {
	return b.filled
}

// UnfilledVolume returns the volume not yet occupied by placed cubes.
func (b *Container) UnfilledVolume() int {
	return b.unfilled
}

// PlacedCount returns the number of committed cubes.
func (b *Container) PlacedCount() int {
	return len(b.placed)
}

// Placed returns the committed cubes in commit order. The slice is a copy;
// the cubes themselves are shared.
func (b *Container) Placed() []*Cube {
	out := make([]*Cube, len(b.placed))
	copy(out, b.placed)
	return out
}

// extent returns the container size along the given axis.
func (b *Container) extent(a geometry.Axis) int {
	switch a {
	case geometry.AxisX:
		return b.length
	case geometry.AxisY:
		return b.width
	default:
		return b.height
	}
}

// Fits reports whether the cube could be committed at the candidate position:
// the cube must lie fully inside the container and must not overlap any
// already placed cube. Fits mutates nothing; the position becomes the cube's
// only through Commit.
func (b *Container) Fits(c *Cube, at geometry.Position) bool {
	for _, axis := range geometry.Axes {
		start := at.Along(axis)
		if start < 0 || start+c.dim > b.extent(axis) {
			return false
		}
	}
	for _, placed := range b.placed {
		if geometry.Overlap(at, c.dim, placed.pos, placed.dim) {
			return false
		}
	}
	return true
}

// Commit places the cube at the given position, appends it to the placed
// list, and moves its volume from unfilled to filled. The position must have
// just passed Fits; Commit re-checks only the cheap contract invariants.
func (b *Container) Commit(c *Cube, at geometry.Position) error {
	if c.placed {
		return ErrAlreadyPlaced
	}
	if c.Volume() > b.unfilled {
		return ErrCapacityExceeded
	}

	c.pos = at
	c.placed = true
	b.placed = append(b.placed, c)
	b.filled += c.Volume()
	b.unfilled -= c.Volume()
	return nil
}
