// Package distmat provides square distance matrices and all-pairs
// shortest-path closure via repeated min-plus squaring.
//
// What & why:
//
//	A Square is a flat, row-major buffer of float64 travel costs indexed by
//	room-handle pairs. The value math.Inf(1) (Unreachable) denotes "no edge";
//	it is absorbing under min-plus addition (Inf + x == Inf) and neutral under
//	min (min(a, Inf) == a), so no sentinel-integer arithmetic is needed and no
//	overflow can alias a legitimate large distance.
//
// Closure algorithm:
//
//	ShortestPaths treats the matrix as the operand of a min-plus product,
//	next[i][j] = min(cur[i][j], min over k of cur[i][k]+cur[k][j]),
//	and repeatedly replaces the matrix with its own min-plus square. Each
//	squaring doubles the maximum path length captured, so ceil(log2(n))
//	passes converge to true shortest distances (see Cormen et al.,
//	Introduction to Algorithms, §25.1), versus the n-1 passes of naive
//	relaxation. In-place updates within a pass are safe: distances only
//	decrease monotonically toward the fixed point, so order of relaxation
//	inside a pass cannot corrupt the converged result. The routine is
//	idempotent: applying it to an already-converged matrix is a no-op.
//
// Complexity:
//
//	– ShortestPaths: O(n³ log n) time, O(n²) for the returned clone.
//	– Square accessors: O(1).
//
// Contract:
//
//	– The diagonal must be 0 before calling ShortestPaths (cost of staying
//	  in place); the result then keeps a zero diagonal.
//	– Off-diagonal entries are either non-negative finite costs or
//	  Unreachable.
package distmat
