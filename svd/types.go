// SPDX-License-Identifier: MIT

package svd

import "errors"

// Summary is the read-only view of a truncated decomposition that sweep
// observers consume.
type Summary interface {
	// Sites returns the lattice size N. The center bond is N/2.
	Sites() int

	// MaxRank returns the largest retained dimension across all bonds
	// truncated so far.
	MaxRank() int

	// MaxTruncErr returns the largest truncation error incurred so far.
	MaxTruncErr() float64

	// KeptEigs returns the retained weights at bond, largest first.
	// A bond that has not been truncated yet yields nil.
	KeptEigs(bond int) []float64
}

// Sentinel errors returned by Worker.
var (
	// ErrBadSites indicates a lattice with fewer than two sites (no bonds).
	ErrBadSites = errors.New("svd: lattice must have at least two sites")

	// ErrBondOutOfRange indicates a bond index outside [1, Sites()-1].
	ErrBondOutOfRange = errors.New("svd: bond index out of range")

	// ErrEmptySpectrum indicates an empty weight list or density matrix.
	ErrEmptySpectrum = errors.New("svd: spectrum is empty")

	// ErrNegativeWeight indicates a weight below -DefaultEpsilon.
	ErrNegativeWeight = errors.New("svd: negative weight in spectrum")

	// ErrNaN indicates a NaN or Inf weight.
	ErrNaN = errors.New("svd: NaN or Inf in spectrum")

	// ErrNotSquare indicates a density matrix that is not square.
	ErrNotSquare = errors.New("svd: density matrix is not square")

	// ErrNotSymmetric indicates a density matrix that is not symmetric within DefaultEpsilon.
	ErrNotSymmetric = errors.New("svd: density matrix is not symmetric")

	// ErrEigenFailed indicates that the eigen decomposition did not succeed.
	ErrEigenFailed = errors.New("svd: eigen decomposition failed")
)

// Defaults.
const (
	// DefaultCutoff is the largest discarded weight fraction allowed.
	DefaultCutoff = 1e-12

	// DefaultMaxDim caps the retained dimension.
	DefaultMaxDim = 5000

	// DefaultMinDim is the smallest retained dimension the cutoff may leave.
	DefaultMinDim = 1

	// DefaultEpsilon is the tolerance for round-off negatives and symmetry checks.
	DefaultEpsilon = 1e-12
)
