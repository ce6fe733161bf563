// SPDX-License-Identifier: MIT

// Package svd keeps the bookkeeping of a truncated decomposition across
// the bonds of a one-dimensional lattice: which density-matrix weights
// were retained at each bond, the largest retained dimension seen so far,
// and the largest truncation error incurred.
//
// What is tracked?
//
//	For every bond b ∈ [1, N-1] of an N-site lattice the sweep driver
//	decomposes the two-site wavefunction and keeps only the dominant
//	weights (squared singular values, i.e. reduced density-matrix
//	eigenvalues). Worker performs that truncation and remembers the
//	result so observers can inspect it through the Summary interface.
//
// Truncation policy:
//   - weights are sorted in descending order;
//   - the smallest weights are dropped while the discarded fraction of
//     the total stays within Cutoff and more than MinDim remain;
//   - at most MaxDim weights are ever kept.
//
// Usage:
//
//	w, err := svd.NewWorker(20, svd.WithCutoff(1e-10), svd.WithMaxDim(64))
//	if err != nil { ... }
//	kept, truncErr, err := w.Truncate(10, weights)
//
//	// or straight from a reduced density matrix:
//	kept, truncErr, err = w.FromDensityMatrix(10, rho)
//
// Complexity: Truncate is O(m log m) in the number of weights;
// FromDensityMatrix is O(m³) for an m×m density matrix.
package svd
