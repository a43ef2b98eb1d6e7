// Package pressure: the branch-and-bound driver.
//
// State machine:
//  1. Seed the frontier with the root and its own bound; the incumbent
//     starts at the root's release (always 0 at the root).
//  2. Pop the highest-bound pending state. If its bound no longer beats the
//     incumbent it is useless — the incumbent may have risen since the
//     push — so drop it and continue.
//  3. Raise the incumbent from the popped state's concrete release.
//  4. With 1 tick left no action can still contribute (an opening needs at
//     least one tick after it), so don't expand.
//  5. Otherwise expand into successors, bound each, drop those that cannot
//     beat the incumbent, and push the rest.
//  6. The frontier draining is the termination condition; the answer is the
//     incumbent.
//
// There is no failure mode inside the search: inputs were validated before
// seeding, every push strictly decreases ticks left, and "do nothing until
// time runs out" is always legal, so the incumbent is always well-defined.
package pressure

import "container/heap"

// search runs the best-first loop and returns the best state's index, the
// best score, and the number of states popped (diagnostic).
func (t *tree) search() (best, bestScore, popped int) {
	var (
		q     boundQueue
		item  pqItem
		st    state
		child state
		b     int
	)
	// The root enters the frontier like any other state: with an admissible
	// bound, a root bound of 0 already proves the optimum is 0, so pruning
	// it at pop time is sound.
	heap.Push(&q, pqItem{bound: t.upperBound(&t.states[0]), idx: 0})

	for q.Len() > 0 {
		item = heap.Pop(&q).(pqItem)
		popped++

		// Stale-bound prune: the incumbent may have risen since push time.
		if item.bound <= bestScore {
			continue
		}

		st = t.states[item.idx]
		if st.released > bestScore {
			best = item.idx
			bestScore = st.released
		}

		// Nothing started now can still contribute.
		if st.stepsLeft <= 1 {
			continue
		}

		for _, child = range t.expand(item.idx) {
			b = t.upperBound(&child)
			if b <= bestScore {
				continue
			}
			heap.Push(&q, pqItem{bound: b, idx: t.add(child)})
		}
	}

	return best, bestScore, popped
}

// expand routes to the variant's successor generator.
func (t *tree) expand(parent int) []state {
	if t.agents == 2 {
		return t.expandDual(parent)
	}

	return t.expandSingle(parent)
}
