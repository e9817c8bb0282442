package packing

import "github.com/eugenenazirov/cube-packer/internal/geometry"

// Cube is a placeable unit with a fixed edge length and, once committed to a
// container, an immutable position.
type Cube struct {
	dim    int
	pos    geometry.Position
	placed bool
}

// NewCube creates an unplaced cube with the given edge length.
func NewCube(dim int) (*Cube, error) {
	if dim <= 0 {
		return nil, ErrInvalidDimension
	}
	return &Cube{dim: dim}, nil
}

// Dim returns the cube's edge length.
func (c *Cube) Dim() int {
	return c.dim
}

// Volume returns the cube's volume, dim cubed.
func (c *Cube) Volume() int {
	return c.dim * c.dim * c.dim
}

// Placed reports whether the cube has been committed to a container.
func (c *Cube) Placed() bool {
	return c.placed
}

// Position returns the cube's committed position. The second return value is
// false while the cube is unplaced.
func (c *Cube) Position() (geometry.Position, bool) {
	return c.pos, c.placed
}

// Overlaps reports whether two cubes occupy common volume. Unplaced cubes
// never overlap anything.
func (c *Cube) Overlaps(other *Cube) bool {
	if !c.placed || !other.placed {
		return false
	}
	return geometry.Overlap(c.pos, c.dim, other.pos, other.dim)
}
