// Package pressure: options, results, actions, and the sentinel error set.
package pressure

import (
	"errors"

	"github.com/katalvlaran/ventra/vent"
)

// DefaultStart is the conventional start room name.
const DefaultStart = "AA"

// DefaultTimeBudget is the conventional single-agent budget in ticks.
const DefaultTimeBudget = 30

// DualTimeBudget is the conventional two-agent budget in ticks.
const DualTimeBudget = 26

// maxRooms caps the network order so the opened-valve set fits one uint64.
const maxRooms = 64

// ActionKind enumerates the action vocabulary.
type ActionKind uint8

const (
	// Start marks the root state; no agent has acted yet.
	Start ActionKind = iota

	// Move walks toward an adjacent room. In the dual-agent variant a move
	// over a folded passage spans several ticks; Owed counts the ticks still
	// due before arrival.
	Move

	// Open opens the valve in the agent's current room.
	Open
)

// String returns the lowercase kind name (diagnostics).
func (k ActionKind) String() string {
	switch k {
	case Start:
		return "start"
	case Move:
		return "move"
	case Open:
		return "open"
	default:
		return "unknown"
	}
}

// Action is one agent's decision for one tick.
type Action struct {
	Kind ActionKind
	Room vent.RoomID // Move: destination; Open: room opened; Start: start room
	Owed int         // Move only: ticks still owed before arrival
}

// Options configures a solve call.
//
// TimeBudget – total ticks available (non-negative).
// Start      – start room name; empty means DefaultStart.
// ReturnPath – when true, Result.Path holds the winning action sequence,
// reconstructed by following parent links from the best state.
type Options struct {
	TimeBudget int
	Start      string
	ReturnPath bool
}

// DefaultOptions returns the conventional single-agent configuration.
func DefaultOptions() Options {
	return Options{TimeBudget: DefaultTimeBudget, Start: DefaultStart}
}

// Result is the outcome of a solve call.
type Result struct {
	// Released is the maximum achievable cumulative release.
	Released int

	// States counts states popped from the frontier (diagnostic only).
	States int

	// Path, when requested, lists one tick per entry with one Action per
	// agent, beginning with the root's Start tick.
	Path [][]Action
}

// Sentinel errors returned by SolveSingle and SolveDual.
var (
	// ErrNilNetwork indicates a nil *vent.Network.
	ErrNilNetwork = errors.New("pressure: network is nil")

	// ErrBadTimeBudget indicates a negative time budget.
	ErrBadTimeBudget = errors.New("pressure: time budget must be non-negative")

	// ErrStartRoom indicates that the configured start room does not exist.
	ErrStartRoom = errors.New("pressure: start room not found")

	// ErrTooManyRooms indicates a network larger than the 64-room cap of the
	// opened-valve bitmask.
	ErrTooManyRooms = errors.New("pressure: network exceeds 64 rooms")
)
