// Package vent: graph compaction for the dual-agent pipeline.
//
// Purpose:
//   - Remove rooms whose valve can never contribute (flow 0), folding their
//     passages into direct weighted edges between the surviving rooms. The
//     search state space and the per-call cost of the bound estimator both
//     shrink with the room count, so this pays for itself immediately.
//
// Contract:
//   - Handles and flow rates of surviving rooms are unchanged; the matrix
//     keeps its order, removed rooms just lose every edge.
package vent

import (
	"fmt"

	"github.com/katalvlaran/ventra/distmat"
)

// Compact removes every zero-flow room except start, one room at a time so
// that chains of zero-flow rooms fold into a single accumulated weight.
//
// For each removed room Z and each surviving pair (A, B) with an edge A–Z
// and an edge Z–B, the new direct cost is
//
//	min(existing(A,B), weight(A,Z) + weight(Z,B))
//
// after which all of Z's edges are cleared. Unreachable legs stay
// Unreachable under the float64 min-plus rules (see distmat).
//
// Complexity: O(Z · V²) time for Z removed rooms, in place.
func (n *Network) Compact(start RoomID) error {
	if int(start) < 0 || int(start) >= n.Order() {
		return fmt.Errorf("start %d: %w", start, ErrRoomRange)
	}

	var (
		order              = n.Order()
		zero, room, child  int
		direct, mediated   float64
		viaZero, fromChild float64
	)
	for zero = 0; zero < order; zero++ {
		if n.flow[zero] != 0 || RoomID(zero) == start {
			continue
		}

		// Fold Z's passages into direct edges between its neighbors.
		for room = 0; room < order; room++ {
			if room == zero {
				continue
			}
			viaZero = n.adj.At(room, zero)
			for child = 0; child < order; child++ {
				if child == zero {
					continue
				}
				fromChild = n.adj.At(zero, child)
				if distmat.IsUnreachable(fromChild) {
					continue
				}
				direct = n.adj.At(room, child)
				mediated = viaZero + fromChild
				if mediated < direct {
					n.adj.Set(room, child, mediated)
				}
			}
		}

		// Clear the removed room's edges (including its diagonal).
		for child = 0; child < order; child++ {
			n.adj.Set(zero, child, distmat.Unreachable)
			n.adj.Set(child, zero, distmat.Unreachable)
		}
	}

	return nil
}
