// Package pressure: the best-first frontier.
//
// A max-heap over (upper bound, arena index) pairs via container/heap.
// Ties between equal bounds are broken arbitrarily; the incumbent check at
// pop time makes tie order irrelevant for correctness.
package pressure

// pqItem is one frontier entry: a pending state and the bound it carried at
// push time. The bound may be stale by pop time; the driver re-checks it.
type pqItem struct {
	bound int
	idx   int
}

// boundQueue implements heap.Interface as a max-heap on bound.
type boundQueue []pqItem

func (q boundQueue) Len() int            { return len(q) }
func (q boundQueue) Less(i, j int) bool  { return q[i].bound > q[j].bound }
func (q boundQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *boundQueue) Push(x interface{}) { *q = append(*q, x.(pqItem)) }
func (q *boundQueue) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]

	return it
}
