// Package distmat: all-pairs shortest paths by min-plus matrix squaring.
//
// Purpose:
//   - Canonical APSP for the search engine; called once per network (twice
//     for the dual-agent pipeline: before and after compaction).
//
// Contract:
//   - Square input with zero diagonal; Unreachable off-diagonal where no
//     direct edge exists.
package distmat

// ShortestPaths returns a new matrix of true shortest-path costs between
// every pair of rooms, leaving the input untouched.
//
// Each minPlusSquare pass doubles the maximum path length accounted for, so
// the loop runs ceil(log2(n)) times instead of the n-1 sweeps a naive
// relaxation would need.
//
// Determinism: fixed src → dst → mid loop order inside each pass.
// Complexity: O(n³ log n) time, O(n²) space for the returned clone.
func ShortestPaths(s *Square) *Square {
	min := s.Clone()
	var span int
	for span = 1; span < min.n; span *= 2 {
		minPlusSquare(min)
	}

	return min
}

// minPlusSquare replaces min in place with its min-plus self-product:
//
//	min[src][dst] = min(min[src][dst], min over mid of min[src][mid]+min[mid][dst])
//
// In-place update is safe: every cell only ever decreases toward the fixed
// point, so a cell relaxed early in the pass can only help, never corrupt,
// later relaxations. Unreachable legs stay Unreachable (Inf + x == Inf).
//
// Complexity: O(n³) time, O(1) extra space. No allocations in the hot loops.
func minPlusSquare(min *Square) {
	n := min.n
	data := min.data // local alias shortens the access path in the hot loop

	var (
		src, dst, mid    int     // loop indices
		baseSrc          int     // row base offset for src in the flat buffer
		mediated, direct float64 // candidate via mid, current best
	)
	for src = 0; src < n; src++ {
		baseSrc = src * n
		for dst = 0; dst < n; dst++ {
			direct = data[baseSrc+dst]
			for mid = 0; mid < n; mid++ {
				mediated = data[baseSrc+mid] + data[mid*n+dst]
				if mediated < direct {
					direct = mediated
				}
			}
			data[baseSrc+dst] = direct
		}
	}
}
