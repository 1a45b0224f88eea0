// SPDX-License-Identifier: MIT
// Package matrix - signed edge-vertex connectivity (oriented incidence).
//
// Conventions:
//   - One row per edge, one column per vertex (the transpose of a classic
//     vertex-edge incidence layout).
//   - Row k carries srcMark at the "from" column and dstMark at the "to"
//     column, so C·x yields per-edge coordinate differences x[to] − x[from].
//   - Self-loops are rejected: their row would be identically zero.
//
// Complexity:
//   - NewConnectivity: O(|V| + |E|) time and space (two non-zeros per row).

package matrix

import "fmt"

// srcMark is placed at the source vertex column (outgoing end).
const srcMark = -1.0

// dstMark is placed at the target vertex column (incoming end).
const dstMark = +1.0

// NewConnectivity builds the |E|×|V| signed connectivity matrix from ordered
// (from, to) index pairs. Row order follows pairs; column order follows the
// caller's vertex indexing.
//
// Errors:
//   - ErrInvalidDimensions for a negative vertex count.
//   - ErrOutOfRange for an endpoint outside [0, vertexCount).
//   - ErrBadShape for a self-loop pair.
func NewConnectivity(vertexCount int, pairs [][2]int) (*CSR, error) {
	if vertexCount < 0 {
		return nil, matrixErrorf(opIncidence, ErrInvalidDimensions)
	}
	t, err := NewTriplet(len(pairs), vertexCount, 2*len(pairs))
	if err != nil {
		return nil, matrixErrorf(opIncidence, err)
	}
	for k, p := range pairs {
		if p[0] == p[1] {
			return nil, matrixErrorf(opIncidence, fmt.Errorf("edge %d loops on %d: %w", k, p[0], ErrBadShape))
		}
		if err = t.Put(k, p[0], srcMark); err != nil {
			return nil, matrixErrorf(opIncidence, fmt.Errorf("edge %d: %w", k, err))
		}
		if err = t.Put(k, p[1], dstMark); err != nil {
			return nil, matrixErrorf(opIncidence, fmt.Errorf("edge %d: %w", k, err))
		}
	}

	return t.ToCSR(), nil
}
