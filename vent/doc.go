// Package vent models a network of rooms connected by passages, a subset
// of which hold a valve with a non-negative flow rate.
//
// What & why:
//
//	Rooms are addressed by a stable integer handle (RoomID) assigned on
//	first sight while building: a declaration's own name first, then its
//	tunnel targets, in input order. The ordering carries no meaning but is
//	deterministic, so downstream distance tables are reproducible.
//
//	The adjacency lives in a distmat.Square: direct passages cost 1, the
//	diagonal is 0, and absent edges are distmat.Unreachable. Compact folds
//	zero-flow rooms away (see Compact) so the dual-agent search runs on a
//	smaller graph without changing any surviving handle or flow rate.
//
// Construction:
//
//	– Build assembles a Network from declaration records and validates them
//	  (duplicate declarations, undeclared tunnel targets, negative flow).
//	– ParseText reads the textual form, one declaration per line:
//	      Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//
// Errors (sentinel, matched with errors.Is):
//
//	– ErrNoRooms        empty declaration list / empty input text.
//	– ErrDuplicateRoom  a name declared more than once.
//	– ErrUndeclaredRoom a tunnel target with no declaration of its own.
//	– ErrNegativeFlow   a negative flow rate.
//	– ErrBadLine        a line ParseText cannot recognize.
//	– ErrRoomRange      a RoomID outside [0..Order()-1] passed to Compact.
//
// A Network is immutable after Build except through Compact; solvers that
// need to compact work on a Clone.
package vent
