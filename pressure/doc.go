// Package pressure implements a time-bounded pressure-release maximization
// search over a vent.Network: given a time budget measured in ticks, find the
// sequence of move/open-valve actions (for one or two cooperating agents)
// that maximizes the total release before time runs out. A valve opened with
// k ticks remaining contributes flow × k to the total.
//
// Algorithm (both variants):
//
//	Best-first branch-and-bound. States live in a flat arena addressed by
//	integer index, each holding its parent index, agent position(s), the
//	action(s) that produced it, ticks left, the opened-valve set, and the
//	release accumulated so far. A priority queue keyed by an admissible
//	upper bound repeatedly yields the most promising pending state; a state
//	whose bound cannot beat the best concrete score seen so far is dropped,
//	both at push time and again at pop time (the incumbent may have risen
//	since the push). The search always terminates: every expansion strictly
//	decreases ticks left and the state space is finite.
//
// Upper bound:
//
//	Closed positive-flow valves are walked in descending flow order and two
//	relaxed schedules are summed side by side: a 1-step-spacing schedule
//	that ignores distances (the i-th opening cannot happen before tick
//	2i-1, or before tick 2·ceil(i/2)-1 with two agents), and a
//	direct-travel schedule that ignores sequencing (each valve charged as
//	if it were the only one pursued). Each sum dominates every feasible
//	completion on its own, so their minimum does too — the bound never
//	underestimates, which branch-and-bound correctness needs. Valves no
//	plan could open with time on the clock are excluded from both sums.
//
// Variants:
//
//	– SolveSingle: one agent on the unit-weight passage graph.
//	– SolveDual: two agents with synchronized ticks. The network is first
//	  compacted (vent.Network.Compact on a working clone), so a move covers
//	  a folded multi-tick passage; the mover emits a countdown action each
//	  tick until it arrives. When both agents share a room, the joint action
//	  where both open that one valve is skipped, and symmetric move pairs
//	  (A→X, B→Y) vs (A→Y, B→X) are enqueued only once.
//
// Concurrency: a solve call is single-threaded and self-contained; the
// incumbent score and the arena are owned by the call frame and never
// outlive it.
//
// Complexity: per generated state the bound costs O(valves); the visited
// state count is input-dependent (pruning keeps it far below the raw
// ticks × rooms × 2^valves bound).
package pressure
