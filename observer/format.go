// SPDX-License-Identifier: MIT

package observer

import (
	"strconv"
	"strings"
)

// eigFloor is the smallest weight printed in fixed notation.
const eigFloor = 1e-2

// formatEig prints v with two decimals, or with two significant digits in
// exponent notation when it is below eigFloor.
func formatEig(v float64) string {
	if v >= eigFloor {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}

	return strconv.FormatFloat(v, 'E', 1, 64)
}

// formatEigs joins at most limit leading weights with ", ".
func formatEigs(eigs []float64, limit int) string {
	if len(eigs) > limit {
		eigs = eigs[:limit]
	}
	parts := make([]string, len(eigs))
	for i, v := range eigs {
		parts[i] = formatEig(v)
	}

	return strings.Join(parts, ", ")
}
