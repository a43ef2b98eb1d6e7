// Package pressure: the state arena.
//
// Design:
//   - States are append-only records in a flat slice; a state refers to its
//     parent by index (-1 for the root). Best-first order means children may
//     be generated long after unrelated nodes, so every state is retained
//     until the search concludes; parent links are used only for path
//     reconstruction, never for traversal.
//
// Invariants (checked by internal tests):
//   - released is non-decreasing along any parent chain;
//   - the opened set only grows along a chain;
//   - stepsLeft decreases by exactly 1 per tick until 0, which is terminal.
package pressure

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ventra/distmat"
	"github.com/katalvlaran/ventra/vent"
)

// state is one node of the explored search tree. Agent slots beyond the
// variant's agent count are unused.
type state struct {
	parent    int             // arena index of the parent, -1 for the root
	rooms     [2]vent.RoomID  // current room per agent
	acts      [2]Action       // actions that produced this state
	stepsLeft int             // ticks remaining; 0 is terminal
	opened    uint64          // opened-valve bitmask keyed by RoomID
	released  int             // cumulative release at this state
}

// openedHas reports whether room's valve is already open in st.
func (st *state) openedHas(room vent.RoomID) bool {
	return st.opened&(1<<uint(room)) != 0
}

// valve pairs a positive-flow room with its rate, for the bound estimator.
type valve struct {
	room vent.RoomID
	flow int
}

// tree owns all search data for one solve call.
type tree struct {
	agents int
	start  vent.RoomID

	adj  *distmat.Square // direct passage costs (compacted for dual)
	dist *distmat.Square // shortest-path closure of adj
	flow []int           // flow rate by RoomID (prefetched)

	// valves holds positive-flow rooms sorted by flow descending (handle
	// ascending on ties). Sorting once here keeps the per-state bound at a
	// single linear scan and makes runs reproducible.
	valves []valve

	states []state
}

// newTree validates inputs, prepares distance tables (compacting a working
// clone first for the dual variant), prefetches flows, and seeds the root.
func newTree(net *vent.Network, opts Options, agents int) (*tree, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if opts.TimeBudget < 0 {
		return nil, ErrBadTimeBudget
	}
	if net.Order() > maxRooms {
		return nil, ErrTooManyRooms
	}
	startName := opts.Start
	if startName == "" {
		startName = DefaultStart
	}
	start, ok := net.Lookup(startName)
	if !ok {
		return nil, fmt.Errorf("%q: %w", startName, ErrStartRoom)
	}

	work := net
	if agents == 2 {
		work = net.Clone()
		if err := work.Compact(start); err != nil {
			return nil, err
		}
	}

	var (
		adj    = work.AdjacencyClone()
		order  = work.Order()
		flow   = make([]int, order)
		valves []valve
		id     int
	)
	for id = 0; id < order; id++ {
		flow[id] = work.Flow(vent.RoomID(id))
		if flow[id] > 0 {
			valves = append(valves, valve{room: vent.RoomID(id), flow: flow[id]})
		}
	}
	sort.Slice(valves, func(i, j int) bool {
		if valves[i].flow != valves[j].flow {
			return valves[i].flow > valves[j].flow
		}

		return valves[i].room < valves[j].room
	})

	t := &tree{
		agents: agents,
		start:  start,
		adj:    adj,
		dist:   distmat.ShortestPaths(adj),
		flow:   flow,
		valves: valves,
	}
	startAct := Action{Kind: Start, Room: start}
	t.states = append(t.states, state{
		parent:    -1,
		rooms:     [2]vent.RoomID{start, start},
		acts:      [2]Action{startAct, startAct},
		stepsLeft: opts.TimeBudget,
	})

	return t, nil
}

// add appends st to the arena and returns its index.
func (t *tree) add(st state) int {
	t.states = append(t.states, st)

	return len(t.states) - 1
}

// childSingle applies one single-agent action to the parent state.
func (t *tree) childSingle(parent int, act Action) state {
	p := t.states[parent]
	st := state{
		parent:    parent,
		rooms:     p.rooms,
		acts:      [2]Action{act, {}},
		stepsLeft: p.stepsLeft - 1,
		opened:    p.opened,
		released:  p.released,
	}
	switch act.Kind {
	case Move:
		st.rooms[0] = act.Room
	case Open:
		st.opened |= 1 << uint(p.rooms[0])
		st.released += t.flow[p.rooms[0]] * st.stepsLeft
	}

	return st
}

// childDual applies a joint action pair to the parent state. A mover lands
// in its destination only once its countdown reaches zero; each opener
// charges its own room's flow for the remaining ticks.
func (t *tree) childDual(parent int, acts [2]Action) state {
	p := t.states[parent]
	st := state{
		parent:    parent,
		rooms:     p.rooms,
		acts:      acts,
		stepsLeft: p.stepsLeft - 1,
		opened:    p.opened,
		released:  p.released,
	}
	var i int
	for i = 0; i < 2; i++ {
		if acts[i].Kind == Move && acts[i].Owed == 0 {
			st.rooms[i] = acts[i].Room
		}
	}
	for i = 0; i < 2; i++ {
		if acts[i].Kind == Open {
			st.opened |= 1 << uint(p.rooms[i])
			st.released += t.flow[p.rooms[i]] * st.stepsLeft
		}
	}

	return st
}

// path reconstructs the tick-by-tick action sequence ending at idx by
// following parent links, root first.
func (t *tree) path(idx int) [][]Action {
	var rev []int
	for cur := idx; cur >= 0; cur = t.states[cur].parent {
		rev = append(rev, cur)
	}
	out := make([][]Action, 0, len(rev))
	var i int
	for i = len(rev) - 1; i >= 0; i-- {
		tick := make([]Action, t.agents)
		copy(tick, t.states[rev[i]].acts[:t.agents])
		out = append(out, tick)
	}

	return out
}
