// Package distmat: Square is the single concrete matrix type.
//
// Purpose:
//   - Dense row-major storage for pairwise travel costs.
//   - Unreachable (+Inf) is the canonical "no edge" value.
//
// Contract:
//   - Indices are room handles in [0..Order()-1]; out-of-range access is a
//     programming error and panics via the backing slice.
package distmat

import (
	"errors"
	"math"
)

// ErrBadOrder is returned when a non-positive matrix order is requested.
var ErrBadOrder = errors.New("distmat: order must be > 0")

// Unreachable marks the absence of an edge (or path) between two rooms.
// It is math.Inf(1): absorbing for min-plus addition, neutral for min.
var Unreachable = math.Inf(1)

// IsUnreachable reports whether v denotes "no path".
func IsUnreachable(v float64) bool { return math.IsInf(v, 1) }

// Square is an n×n matrix of travel costs in a flat row-major buffer.
type Square struct {
	n    int       // matrix order (rooms)
	data []float64 // flat backing storage, length n*n
}

// NewSquare creates an n×n Square with every cell set to Unreachable.
// Callers set the diagonal to 0 and fill direct edges afterwards.
// Complexity: O(n²).
func NewSquare(n int) (*Square, error) {
	if n <= 0 {
		return nil, ErrBadOrder
	}
	data := make([]float64, n*n)
	var i int
	for i = 0; i < len(data); i++ {
		data[i] = Unreachable
	}

	return &Square{n: n, data: data}, nil
}

// Order returns the matrix order n. Complexity: O(1).
func (s *Square) Order() int { return s.n }

// At returns the cost from src to dst. Complexity: O(1).
func (s *Square) At(src, dst int) float64 { return s.data[src*s.n+dst] }

// Set assigns the cost from src to dst. Complexity: O(1).
func (s *Square) Set(src, dst int, v float64) { s.data[src*s.n+dst] = v }

// Row returns the slice of outgoing costs from src.
// The slice aliases the backing buffer; callers must not resize it.
// Complexity: O(1).
func (s *Square) Row(src int) []float64 {
	start := src * s.n

	return s.data[start : start+s.n]
}

// Clone returns a deep copy of s. Complexity: O(n²).
func (s *Square) Clone() *Square {
	cp := make([]float64, len(s.data))
	copy(cp, s.data)

	return &Square{n: s.n, data: cp}
}

// Equal reports cell-by-cell equality of two matrices of the same order.
// Unreachable cells compare equal to each other (Inf == Inf holds in IEEE 754).
// Complexity: O(n²).
func (s *Square) Equal(o *Square) bool {
	if o == nil || s.n != o.n {
		return false
	}
	var i int
	for i = 0; i < len(s.data); i++ {
		if s.data[i] != o.data[i] {
			return false
		}
	}

	return true
}
