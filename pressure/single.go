// Package pressure: single-agent variant.
package pressure

import (
	"github.com/katalvlaran/ventra/distmat"
	"github.com/katalvlaran/ventra/vent"
)

// SolveSingle computes the maximum achievable release for one agent on the
// unit-weight passage graph within opts.TimeBudget ticks.
//
// Errors: ErrNilNetwork, ErrBadTimeBudget, ErrStartRoom, ErrTooManyRooms.
// Complexity: O(valves) bound per generated state; visited states depend on
// pruning (see package doc).
func SolveSingle(net *vent.Network, opts Options) (Result, error) {
	t, err := newTree(net, opts, 1)
	if err != nil {
		return Result{}, err
	}
	best, score, popped := t.search()
	res := Result{Released: score, States: popped}
	if opts.ReturnPath {
		res.Path = t.path(best)
	}

	return res, nil
}

// expandSingle enumerates legal successors of the parent state: open the
// current room's valve (if it has flow, is still closed, and is not the
// start room, which only serves as a parking spot), or move through each
// passage — except straight back to the previous room when nothing was
// opened there in between, which would only pollute the frontier with
// back-and-forth oscillation.
func (t *tree) expandSingle(parent int) []state {
	var (
		p    = t.states[parent]
		room = p.rooms[0]
		row  = t.adj.Row(int(room))
		out  []state
		dst  int
	)
	if t.flow[room] > 0 && !p.openedHas(room) && room != t.start {
		out = append(out, t.childSingle(parent, Action{Kind: Open, Room: room}))
	}
	for dst = 0; dst < len(row); dst++ {
		if dst == int(room) || distmat.IsUnreachable(row[dst]) {
			continue
		}
		if p.parent >= 0 {
			gp := t.states[p.parent]
			if gp.rooms[0] == vent.RoomID(dst) && gp.acts[0].Kind != Open {
				continue
			}
		}
		out = append(out, t.childSingle(parent, Action{Kind: Move, Room: vent.RoomID(dst)}))
	}

	return out
}
