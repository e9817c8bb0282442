// Package packing decides how many cubes from a supplied multiset fit into a
// fixed-size rectangular container without overlap. Placement uses a greedy
// first-fit heuristic over adjacency candidates, so it maximises the packed
// count for the order it is given rather than proving optimality.
package packing
