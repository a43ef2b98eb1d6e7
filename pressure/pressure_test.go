// Package pressure_test covers the public solver surface: input validation,
// the end-to-end reference scenarios (1651 single / 1707 dual on the 10-room
// network), degenerate inputs, and winning-path reconstruction.
package pressure_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ventra/pressure"
	"github.com/katalvlaran/ventra/vent"
)

// exampleNet parses the 10-room reference network (exampleInput, shared
// with the runnable examples and benchmarks).
func exampleNet(t *testing.T) *vent.Network {
	t.Helper()
	n, err := vent.ParseText(strings.NewReader(exampleInput))
	require.NoError(t, err)

	return n
}

// ------------------------------------------------------------------------
// 1. Validation.
// ------------------------------------------------------------------------

func TestSolveSingle_NilNetwork(t *testing.T) {
	_, err := pressure.SolveSingle(nil, pressure.DefaultOptions())
	require.ErrorIs(t, err, pressure.ErrNilNetwork)
}

func TestSolveSingle_NegativeBudget(t *testing.T) {
	n := exampleNet(t)
	_, err := pressure.SolveSingle(n, pressure.Options{TimeBudget: -1, Start: "AA"})
	require.ErrorIs(t, err, pressure.ErrBadTimeBudget)
}

func TestSolveSingle_UnknownStart(t *testing.T) {
	n := exampleNet(t)
	_, err := pressure.SolveSingle(n, pressure.Options{TimeBudget: 30, Start: "ZZ"})
	require.ErrorIs(t, err, pressure.ErrStartRoom)
}

func TestSolveSingle_TooManyRooms(t *testing.T) {
	// A 65-room chain exceeds the opened-set bitmask capacity.
	const rooms = 65
	decls := make([]vent.Decl, 0, rooms)
	for i := 0; i < rooms; i++ {
		d := vent.Decl{Name: fmt.Sprintf("R%02d", i), Flow: 1}
		if i > 0 {
			d.Tunnels = append(d.Tunnels, fmt.Sprintf("R%02d", i-1))
		}
		if i+1 < rooms {
			d.Tunnels = append(d.Tunnels, fmt.Sprintf("R%02d", i+1))
		}
		decls = append(decls, d)
	}
	n, err := vent.Build(decls)
	require.NoError(t, err)

	_, err = pressure.SolveSingle(n, pressure.Options{TimeBudget: 10, Start: "R00"})
	require.ErrorIs(t, err, pressure.ErrTooManyRooms)
	_, err = pressure.SolveDual(n, pressure.Options{TimeBudget: 10, Start: "R00"})
	require.ErrorIs(t, err, pressure.ErrTooManyRooms)
}

// ------------------------------------------------------------------------
// 2. End-to-end reference scenarios.
// ------------------------------------------------------------------------

func TestSolveSingle_Example30(t *testing.T) {
	n := exampleNet(t)
	res, err := pressure.SolveSingle(n, pressure.Options{TimeBudget: 30, Start: "AA"})
	require.NoError(t, err)
	assert.Equal(t, 1651, res.Released)
	assert.Greater(t, res.States, 0)
}

func TestSolveDual_Example26(t *testing.T) {
	n := exampleNet(t)
	res, err := pressure.SolveDual(n, pressure.Options{TimeBudget: 26, Start: "AA"})
	require.NoError(t, err)
	assert.Equal(t, 1707, res.Released)
}

func TestSolve_DegenerateStartOnly(t *testing.T) {
	n, err := vent.Build([]vent.Decl{{Name: "AA", Flow: 0}})
	require.NoError(t, err)

	// Zero budget: nothing can happen.
	res, err := pressure.SolveSingle(n, pressure.Options{TimeBudget: 0, Start: "AA"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Released)

	// Positive budget but no valves to open.
	res, err = pressure.SolveDual(n, pressure.Options{TimeBudget: 26, Start: "AA"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Released)
}

func TestSolveSingle_DefaultOptions(t *testing.T) {
	n := exampleNet(t)
	res, err := pressure.SolveSingle(n, pressure.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1651, res.Released)
}

// ------------------------------------------------------------------------
// 3. Winning-path reconstruction.
// ------------------------------------------------------------------------

func TestSolveSingle_PathReplaysToScore(t *testing.T) {
	n := exampleNet(t)
	opts := pressure.Options{TimeBudget: 30, Start: "AA", ReturnPath: true}
	res, err := pressure.SolveSingle(n, opts)
	require.NoError(t, err)
	require.NotEmpty(t, res.Path)
	require.Len(t, res.Path[0], 1)
	assert.Equal(t, pressure.Start, res.Path[0][0].Kind)

	// Replay the action sequence tick by tick and recompute the release.
	room, ok := n.Lookup("AA")
	require.True(t, ok)
	steps := opts.TimeBudget
	total := 0
	for _, tick := range res.Path[1:] {
		require.Len(t, tick, 1)
		act := tick[0]
		steps--
		switch act.Kind {
		case pressure.Move:
			room = act.Room
		case pressure.Open:
			require.Equal(t, room, act.Room)
			total += n.Flow(room) * steps
		default:
			t.Fatalf("unexpected action kind %v mid-path", act.Kind)
		}
	}
	assert.GreaterOrEqual(t, steps, 0)
	assert.Equal(t, res.Released, total)
}

func TestSolveDual_PathShape(t *testing.T) {
	n := exampleNet(t)
	res, err := pressure.SolveDual(n, pressure.Options{TimeBudget: 26, Start: "AA", ReturnPath: true})
	require.NoError(t, err)
	require.NotEmpty(t, res.Path)
	for i, tick := range res.Path {
		require.Len(t, tick, 2, "tick %d", i)
	}
	assert.Equal(t, pressure.Start, res.Path[0][0].Kind)
	assert.Equal(t, pressure.Start, res.Path[0][1].Kind)
	assert.LessOrEqual(t, len(res.Path), 27) // root tick + at most 26 action ticks
}
