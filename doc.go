// Package proxima answers one question for particle and agent simulations:
// which points are close enough to interact?
//
// What is proxima?
//
//	A small, dependency-light library that, given N positions in flat
//	Euclidean space and a cutoff distance, returns for every point the
//	ascending list of all other points strictly closer than the cutoff.
//		• point/ holds validated, owned position sets + Euclidean kernels
//		• neighbours/ holds the all-pairs neighbour finder and its result mapping
//
// Why proxima?
//
//   - Pure: no global state, no memory between calls, deterministic output
//   - Explicit: dimension checked once, InvalidInput errors instead of silent padding
//   - Optional parallel outer loop with results identical to the sequential run
//
// Quick example (1-D, cutoff 3):
//
//	0   1         4
//	●───●         ●
//
//	{0: [1], 1: [0], 2: []}
//
// The search is the plain O(N²·D) all-pairs scan; there is no grid,
// tree or periodic-boundary handling.
//
//	go get github.com/katalvlaran/proxima/neighbours
package proxima
