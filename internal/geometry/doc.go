// Package geometry provides the integer 3D primitives used by the packing
// engine: positions, axis selection, and the strict axis-aligned overlap
// predicate.
package geometry
