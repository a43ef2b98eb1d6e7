// Package pressure: dual-agent variant.
package pressure

import (
	"github.com/katalvlaran/ventra/distmat"
	"github.com/katalvlaran/ventra/vent"
)

// SolveDual computes the maximum achievable release for two cooperating
// agents within opts.TimeBudget ticks. The search runs on a compacted clone
// of the network (zero-flow rooms folded into weighted passages), so moves
// may span several ticks via countdown actions.
//
// Errors: ErrNilNetwork, ErrBadTimeBudget, ErrStartRoom, ErrTooManyRooms.
func SolveDual(net *vent.Network, opts Options) (Result, error) {
	t, err := newTree(net, opts, 2)
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

// expandDual builds the joint successor set as the cross product of both
// agents' individual action lists, with two same-room policies: both agents
// must not start opening the one shared valve together, and a move pair
// (A→X, B→Y) duplicates (A→Y, B→X) so only the first representative is kept.
func (t *tree) expandDual(parent int) []state {
	var (
		p        = t.states[parent]
		choicesA = t.agentActions(&p, 0)
		choicesB = t.agentActions(&p, 1)
		sameRoom = p.rooms[0] == p.rooms[1]
		combos   [][2]Action
		a, b     Action
	)
	for _, a = range choicesA {
		for _, b = range choicesB {
			if sameRoom {
				if a.Kind == Open && b.Kind == Open {
					continue
				}
				if a.Kind == Move && b.Kind == Move && hasCombo(combos, [2]Action{b, a}) {
					continue
				}
			}
			combos = append(combos, [2]Action{a, b})
		}
	}

	out := make([]state, 0, len(combos))
	var c [2]Action
	for _, c = range combos {
		out = append(out, t.childDual(parent, c))
	}

	return out
}

// agentActions lists agent i's legal actions from state p. An agent mid-way
// through a folded passage only decrements its countdown; otherwise it may
// open its room's valve (flow > 0, still closed) or start a move through any
// passage, with the same no-backtrack rule as the single variant.
func (t *tree) agentActions(p *state, i int) []Action {
	act := p.acts[i]
	if act.Kind == Move && act.Owed > 0 {
		return []Action{{Kind: Move, Room: act.Room, Owed: act.Owed - 1}}
	}

	var (
		room = p.rooms[i]
		row  = t.adj.Row(int(room))
		out  []Action
		dst  int
	)
	if t.flow[room] > 0 && !p.openedHas(room) {
		out = append(out, Action{Kind: Open, Room: room})
	}
	for dst = 0; dst < len(row); dst++ {
		if dst == int(room) || distmat.IsUnreachable(row[dst]) {
			continue
		}
		if p.parent >= 0 {
			gp := t.states[p.parent]
			if gp.rooms[i] == vent.RoomID(dst) && gp.acts[i].Kind != Open {
				continue
			}
		}
		out = append(out, Action{Kind: Move, Room: vent.RoomID(dst), Owed: int(row[dst]) - 1})
	}

	return out
}

// hasCombo reports whether pair is already among combos.
func hasCombo(combos [][2]Action, pair [2]Action) bool {
	var c [2]Action
	for _, c = range combos {
		if c == pair {
			return true
		}
	}

	return false
}
