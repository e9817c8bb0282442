package packing

import (
	"fmt"
	"strings"
)

const (
	maxSizeClasses = 64
	maxTotalCubes  = 4096
)

// SortOrder controls the order in which the builder emits size classes.
type SortOrder int

const (
	// Ascending emits the smallest cubes first.
	Ascending SortOrder = iota
	// Descending emits the largest cubes first.
	Descending
)

// String returns the order name for logs and API payloads.
func (o SortOrder) String() string {
	if o == Descending {
		return "desc"
	}
	return "asc"
}

// ParseSortOrder maps "asc"/"desc" (also accepted: "ascending"/"descending")
// to a SortOrder.
func ParseSortOrder(raw string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("packing: sort order must be asc or desc, got %q", raw)
	}
}

// BuildCubes expands a run-length cube descriptor into a flat ordered list of
// unplaced cubes. Entry i of counts is the number of cubes with edge length
// i+1. Each size class is contiguous in the output; Descending reverses the
// class order, which changes the heuristic's processing order but not its
// correctness.
func BuildCubes(counts []int, order SortOrder) ([]*Cube, error) {
	if len(counts) > maxSizeClasses {
		return nil, ErrDescriptorTooLarge
	}

	total := 0
	for _, n := range counts {
		if n < 0 {
			return nil, ErrInvalidCubeCounts
		}
		total += n
		if total > maxTotalCubes {
			return nil, ErrDescriptorTooLarge
		}
	}

	cubes := make([]*Cube, 0, total)
	appendClass := func(dim, n int) error {
		for i := 0; i < n; i++ {
			c, err := NewCube(dim)
			if err != nil {
				return err
			}
			cubes = append(cubes, c)
		}
		return nil
	}

	if order == Descending {
		for i := len(counts) - 1; i >= 0; i-- {
			if err := appendClass(i+1, counts[i]); err != nil {
				return nil, err
			}
		}
		return cubes, nil
	}

	for i, n := range counts {
		if err := appendClass(i+1, n); err != nil {
			return nil, err
		}
	}
	return cubes, nil
}
