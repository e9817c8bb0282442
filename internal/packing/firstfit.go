package packing

import "github.com/eugenenazirov/cube-packer/internal/geometry"

// Result summarises a packing run: how many cubes were committed and how the
// container volume split between filled and unfilled space. Whether an
// incomplete fill counts as failure is caller policy.
type Result struct {
	PlacedCubes    int
	FilledVolume   int
	UnfilledVolume int
}

// Packer describes the behaviour required from a placement engine.
type Packer interface {
	Pack(box *Container, cubes []*Cube) Result
}

type firstFitPacker struct{}

// New creates a Packer using the greedy first-fit heuristic.
func New() Packer {
	return &firstFitPacker{}
}

// Pack processes cubes in order and commits each at the first candidate
// position that fits. Cubes that find no position are retried in further
// passes for as long as a pass places at least one cube; candidate positions
// freed up by later placements can then accept them. The heuristic is greedy
// and may leave a solvable instance partially packed.
func (p *firstFitPacker) Pack(box *Container, cubes []*Cube) Result {
	remaining := cubes
	for len(remaining) > 0 && box.UnfilledVolume() > 0 {
		var side []*Cube
		for _, c := range remaining {
			if box.UnfilledVolume() == 0 {
				break
			}
			at, ok := p.findPlacement(box, c)
			if !ok {
				side = append(side, c)
				continue
			}
			if err := box.Commit(c, at); err != nil {
				// Contract violation; treat the cube as unplaceable.
				side = append(side, c)
			}
		}
		if len(side) == len(remaining) {
			break
		}
		remaining = side
	}

	return Result{
		PlacedCubes:    box.PlacedCount(),
		FilledVolume:   box.FilledVolume(),
		UnfilledVolume: box.UnfilledVolume(),
	}
}

// findPlacement returns the first acceptable candidate position for the cube.
// An empty container admits only the origin. Otherwise candidates sit flush
// against the far face of a placed cube: axes are tried in X, Y, Z order and,
// within an axis, placed cubes in commit order. The first candidate that fits
// wins, which keeps the heuristic deterministic.
func (p *firstFitPacker) findPlacement(box *Container, c *Cube) (geometry.Position, bool) {
	placed := box.Placed()
	if len(placed) == 0 {
		origin := geometry.Position{}
		return origin, box.Fits(c, origin)
	}

	for _, axis := range geometry.Axes {
		for _, anchor := range placed {
			anchorPos, _ := anchor.Position()
			candidate := anchorPos.Shift(axis, anchor.Dim())
			if box.Fits(c, candidate) {
				return candidate, true
			}
		}
	}
	return geometry.Position{}, false
}
