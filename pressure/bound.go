// Package pressure: admissible upper-bound estimators.
//
// Rationale:
//   - Each estimator is the minimum of two relaxed schedules, each of which
//     independently dominates every feasible completion, so their minimum
//     does too:
//     – the SPACING schedule ignores distances and pretends the closed
//     valves sit one step apart in descending flow order, so the i-th
//     pretended opening happens as early as any real plan's i-th opening
//     possibly can;
//     – the DIRECT schedule ignores scheduling and charges every closed
//     valve its full direct-travel value from the current position(s),
//     as if it were the only valve pursued.
//     The two relaxations must not be mixed per valve: capping the i-th
//     spacing slot by the i-th valve's own direct value undercounts plans
//     that skip a high-flow valve whose direct value is small, which is
//     exactly the inadmissibility trap.
//   - A valve that no plan from this state can open with time on the clock
//     (travel plus the opening tick exhausts the budget, or it is
//     unreachable) is excluded from both schedules.
//
// Complexity: O(valves) per call on the pre-sorted valve list; the sort is
// paid once at tree construction.
package pressure

import (
	"github.com/katalvlaran/ventra/distmat"
	"github.com/katalvlaran/ventra/vent"
)

// upperBound routes to the variant's estimator.
func (t *tree) upperBound(st *state) int {
	if t.agents == 2 {
		return t.upperBoundDual(st)
	}

	return t.upperBoundSingle(st)
}

// upperBoundSingle bounds the single-agent completion from st.
//
// Spacing schedule: the i-th opening (1-indexed, flow descending) cannot
// happen before tick 2i-1 — at most one closed valve is in the current room,
// every later one costs at least a move plus the opening tick — so it is
// worth at most (stepsLeft+1-2i) × flow. Direct schedule: a valve at
// distance md is worth at most (stepsLeft-md-1) × flow. Both sums dominate
// any feasible plan; the bound is their minimum.
func (t *tree) upperBoundSingle(st *state) int {
	var (
		spacing, direct int
		window          = st.stepsLeft - 1 // ticks left after the i-th pretend opening
		room            = int(st.rooms[0])
		d               float64
		md              int
		v               valve
	)
	for _, v = range t.valves {
		if st.openedHas(v.room) {
			continue
		}
		d = t.dist.At(room, int(v.room))
		if distmat.IsUnreachable(d) {
			continue
		}
		md = int(d)
		if md+1 >= st.stepsLeft {
			continue // travel plus opening exhausts the budget
		}
		direct += (st.stepsLeft - md - 1) * v.flow
		if window > 0 {
			spacing += window * v.flow
			window -= 2
		}
	}
	if spacing < direct {
		return st.released + spacing
	}

	return st.released + direct
}

// upperBoundDual bounds the two-agent completion from st with the same
// min-of-two-schedules construction. The spacing schedule books up to two
// openings per 2-tick window (one per agent); the direct schedule charges
// each valve via the nearer agent's effective distance, which accounts for
// ticks still owed on a passage an agent is mid-way through.
func (t *tree) upperBoundDual(st *state) int {
	var (
		spacing, direct int
		window          = st.stepsLeft - 1
		booked          int // openings charged in the current 2-tick window
		md, other       int
		ok, reach       bool
		v               valve
	)
	for _, v = range t.valves {
		if st.openedHas(v.room) {
			continue
		}
		md, ok = t.effectiveDistance(st, 0, v.room)
		other, reach = t.effectiveDistance(st, 1, v.room)
		if reach && (!ok || other < md) {
			md, ok = other, true
		}
		if !ok || md+1 >= st.stepsLeft {
			continue
		}
		direct += (st.stepsLeft - md - 1) * v.flow
		if window > 0 {
			spacing += window * v.flow
			booked++
			if booked == 2 {
				window -= 2
				booked = 0
			}
		}
	}
	if spacing < direct {
		return st.released + spacing
	}

	return st.released + direct
}

// effectiveDistance returns the fewest ticks before agent i can stand in
// room dst. An agent mid-way through a folded passage must first finish it:
// the ticks still owed, then the shortest path onward from the passage's far
// end. Measuring from the origin room instead would overstate the remaining
// travel and break admissibility.
func (t *tree) effectiveDistance(st *state, i int, dst vent.RoomID) (int, bool) {
	var (
		act  = st.acts[i]
		from = int(st.rooms[i])
		owed int
	)
	if act.Kind == Move && act.Owed > 0 {
		from = int(act.Room)
		owed = act.Owed
	}
	d := t.dist.At(from, int(dst))
	if distmat.IsUnreachable(d) {
		return 0, false
	}

	return owed + int(d), true
}
