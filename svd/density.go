// SPDX-License-Identifier: MIT

package svd

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// FromDensityMatrix diagonalizes the reduced density matrix rho for bond
// and truncates its eigenvalues with Truncate.
//
// rho must be square and symmetric within DefaultEpsilon.
// Errors: ErrEmptySpectrum, ErrNotSquare, ErrNotSymmetric, ErrEigenFailed,
// plus anything Truncate returns.
// Complexity: O(m³) for an m×m matrix.
func (w *Worker) FromDensityMatrix(bond int, rho [][]float64) ([]float64, float64, error) {
	if err := w.checkBond(bond); err != nil {
		return nil, 0, err
	}
	n := len(rho)
	if n == 0 {
		return nil, 0, ErrEmptySpectrum
	}

	data := make([]float64, 0, n*n)
	for i, row := range rho {
		if len(row) != n {
			return nil, 0, fmt.Errorf("FromDensityMatrix: row %d has %d cols, want %d: %w", i, len(row), n, ErrNotSquare)
		}
		data = append(data, row...)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(rho[i][j]-rho[j][i]) > DefaultEpsilon {
				return nil, 0, fmt.Errorf("FromDensityMatrix: (%d,%d): %w", i, j, ErrNotSymmetric)
			}
		}
	}

	var es mat.EigenSym
	if ok := es.Factorize(mat.NewSymDense(n, data), false); !ok {
		return nil, 0, ErrEigenFailed
	}

	return w.Truncate(bond, es.Values(nil))
}
