// Package vent: Network construction and accessors.
//
// Design principles:
//   - Strict sentinels: only errors from types.go, wrapped with context at
//     the boundary.
//   - Deterministic handles: first-sight order over the declaration stream.
//   - No mutation after Build except Compact (solvers clone first).
package vent

import (
	"fmt"

	"github.com/katalvlaran/ventra/distmat"
)

// Network is a built, validated room/valve graph.
type Network struct {
	adj   *distmat.Square   // direct passage costs: diag 0, edges 1 (Compact rewrites)
	flow  []int             // flow rate by RoomID
	names []string          // display name by RoomID (diagnostics only)
	index map[string]RoomID // name -> handle
}

// Neighbor is one outgoing passage: the room behind it and the travel cost.
type Neighbor struct {
	Room   RoomID
	Weight int
}

// Build assembles a Network from declaration records.
//
// Stage 1 (Handles): assign a RoomID to each distinct name on first sight —
// the declared name itself, then its tunnel targets, in input order.
// Duplicate declarations and negative flow rates are rejected here.
// Stage 2 (Check): every name that was sighted must own a declaration.
// Stage 3 (Edges): allocate the adjacency, zero the diagonal, and record a
// unit-cost edge per declared tunnel.
//
// Complexity: O(V² + E) time (matrix init dominates), O(V²) space.
func Build(decls []Decl) (*Network, error) {
	if len(decls) == 0 {
		return nil, ErrNoRooms
	}

	var (
		index    = make(map[string]RoomID, len(decls))
		names    = make([]string, 0, len(decls))
		declared = make([]bool, 0, len(decls))
		handle   func(name string) RoomID
		d        Decl
		tunnel   string
		id       RoomID
		ok       bool
	)
	handle = func(name string) RoomID {
		if id, ok = index[name]; ok {
			return id
		}
		id = RoomID(len(names))
		index[name] = id
		names = append(names, name)
		declared = append(declared, false)

		return id
	}

	// Stage 1: handles, duplicate and flow validation.
	for _, d = range decls {
		id = handle(d.Name)
		if declared[id] {
			return nil, fmt.Errorf("room %q: %w", d.Name, ErrDuplicateRoom)
		}
		declared[id] = true
		if d.Flow < 0 {
			return nil, fmt.Errorf("room %q: %w", d.Name, ErrNegativeFlow)
		}
		for _, tunnel = range d.Tunnels {
			handle(tunnel)
		}
	}

	// Stage 2: every sighted name needs a declaration.
	var i int
	for i = 0; i < len(names); i++ {
		if !declared[i] {
			return nil, fmt.Errorf("room %q: %w", names[i], ErrUndeclaredRoom)
		}
	}

	// Stage 3: adjacency. len(names) == len(decls) after Stage 2.
	adj, err := distmat.NewSquare(len(names))
	if err != nil {
		return nil, err
	}
	flow := make([]int, len(names))
	for _, d = range decls {
		id = index[d.Name]
		flow[id] = d.Flow
		adj.Set(int(id), int(id), 0)
		for _, tunnel = range d.Tunnels {
			adj.Set(int(id), int(index[tunnel]), 1)
		}
	}

	return &Network{adj: adj, flow: flow, names: names, index: index}, nil
}

// Order returns the number of rooms. Complexity: O(1).
func (n *Network) Order() int { return len(n.names) }

// Flow returns the valve flow rate of room id. Complexity: O(1).
func (n *Network) Flow(id RoomID) int { return n.flow[id] }

// Name returns the display name of room id (diagnostics). Complexity: O(1).
func (n *Network) Name(id RoomID) string { return n.names[id] }

// Lookup resolves a room name to its handle. Complexity: O(1).
func (n *Network) Lookup(name string) (RoomID, bool) {
	id, ok := n.index[name]

	return id, ok
}

// AdjacencyClone returns a deep copy of the direct-passage cost matrix.
// Complexity: O(V²).
func (n *Network) AdjacencyClone() *distmat.Square { return n.adj.Clone() }

// Neighbors lists the rooms directly reachable from id with their travel
// costs, in ascending handle order. Self-loops are excluded.
// Complexity: O(V) time, O(deg) space.
func (n *Network) Neighbors(id RoomID) []Neighbor {
	var (
		row = n.adj.Row(int(id))
		out []Neighbor
		dst int
	)
	for dst = 0; dst < len(row); dst++ {
		if dst == int(id) || distmat.IsUnreachable(row[dst]) {
			continue
		}
		out = append(out, Neighbor{Room: RoomID(dst), Weight: int(row[dst])})
	}

	return out
}

// Clone returns a deep copy of the network, safe to Compact independently.
// Complexity: O(V²).
func (n *Network) Clone() *Network {
	flow := make([]int, len(n.flow))
	copy(flow, n.flow)
	names := make([]string, len(n.names))
	copy(names, n.names)
	index := make(map[string]RoomID, len(n.index))
	var (
		name string
		id   RoomID
	)
	for name, id = range n.index {
		index[name] = id
	}

	return &Network{adj: n.adj.Clone(), flow: flow, names: names, index: index}
}
