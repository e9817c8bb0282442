package geometry

// Axis selects one of the three coordinate axes of a position.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Axes lists the axes in the fixed candidate-generation order X, Y, Z.
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

// String returns the axis name for logs and error messages.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Position is an integer point in 3D space.
type Position struct {
	X int
	Y int
	Z int
}

// Along returns the coordinate on the given axis.
func (p Position) Along(a Axis) int {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	case AxisZ:
		return p.Z
	default:
		return 0
	}
}

// Shift returns a copy of p moved by delta along the given axis.
func (p Position) Shift(a Axis, delta int) Position {
	switch a {
	case AxisX:
		p.X += delta
	case AxisY:
		p.Y += delta
	case AxisZ:
		p.Z += delta
	}
	return p
}

// Overlap reports whether two axis-aligned cubes, anchored at a and b with
// edge lengths aDim and bDim, occupy common volume. The interval comparison
// is strict on every axis: cubes that merely share a face or an edge do not
// overlap.
func Overlap(a Position, aDim int, b Position, bDim int) bool {
	for _, axis := range Axes {
		if !intervalOverlap(a.Along(axis), aDim, b.Along(axis), bDim) {
			return false
		}
	}
	return true
}

func intervalOverlap(aStart, aLen, bStart, bLen int) bool {
	return aStart < bStart+bLen && aStart+aLen > bStart
}
