// Package vent: declaration records, handles, and the sentinel error set.
// All constructors MUST return these sentinels (possibly wrapped with
// contextual fmt.Errorf("...: %w", ErrX)); tests match them via errors.Is.
package vent

import "errors"

// RoomID is a stable integer handle for a room, assigned on first sight
// during Build and never reassigned afterwards (Compact keeps handles).
type RoomID int

// Decl is one parsed room declaration: a name, the valve's flow rate
// (0 means the valve cannot usefully be opened), and the names of the
// rooms reachable through a direct passage.
type Decl struct {
	Name    string
	Flow    int
	Tunnels []string
}

// Sentinel errors returned by Build, ParseText, and Compact.
var (
	// ErrNoRooms indicates an empty declaration list or empty input text.
	ErrNoRooms = errors.New("vent: no room declarations")

	// ErrDuplicateRoom indicates that a room name was declared more than once.
	ErrDuplicateRoom = errors.New("vent: room declared more than once")

	// ErrUndeclaredRoom indicates that a tunnel target never received a
	// declaration of its own.
	ErrUndeclaredRoom = errors.New("vent: tunnel leads to undeclared room")

	// ErrNegativeFlow indicates a declaration with a negative flow rate.
	ErrNegativeFlow = errors.New("vent: flow rate must be non-negative")

	// ErrBadLine indicates a line that does not match the declaration format.
	ErrBadLine = errors.New("vent: malformed room declaration")

	// ErrRoomRange indicates a room handle outside the network's range.
	ErrRoomRange = errors.New("vent: room handle out of range")
)
