// Package vent_test covers network construction (Build/ParseText validation,
// handle assignment, accessors) and the shortest-path reference table for the
// 10-room example network.
package vent_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ventra/distmat"
	"github.com/katalvlaran/ventra/vent"
)

// exampleText is the 10-room reference network: flows
// {AA:0, BB:13, CC:2, DD:20, EE:3, FF:0, GG:0, HH:22, II:0, JJ:21}.
const exampleText = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II`

func example(t *testing.T) *vent.Network {
	t.Helper()
	n, err := vent.ParseText(strings.NewReader(exampleText))
	require.NoError(t, err)

	return n
}

// ------------------------------------------------------------------------
// 1. Validation: Build and ParseText sentinels.
// ------------------------------------------------------------------------

func TestBuild_NoRooms(t *testing.T) {
	_, err := vent.Build(nil)
	require.ErrorIs(t, err, vent.ErrNoRooms)
}

func TestBuild_DuplicateRoom(t *testing.T) {
	_, err := vent.Build([]vent.Decl{
		{Name: "AA", Flow: 0, Tunnels: []string{"BB"}},
		{Name: "BB", Flow: 1, Tunnels: []string{"AA"}},
		{Name: "AA", Flow: 2, Tunnels: []string{"BB"}},
	})
	require.ErrorIs(t, err, vent.ErrDuplicateRoom)
}

func TestBuild_UndeclaredRoom(t *testing.T) {
	_, err := vent.Build([]vent.Decl{
		{Name: "AA", Flow: 0, Tunnels: []string{"ZZ"}},
	})
	require.ErrorIs(t, err, vent.ErrUndeclaredRoom)
}

func TestBuild_NegativeFlow(t *testing.T) {
	_, err := vent.Build([]vent.Decl{
		{Name: "AA", Flow: -4, Tunnels: nil},
	})
	require.ErrorIs(t, err, vent.ErrNegativeFlow)
}

func TestParseText_BadLine(t *testing.T) {
	_, err := vent.ParseText(strings.NewReader("Valve AA leaks everywhere"))
	require.ErrorIs(t, err, vent.ErrBadLine)
}

func TestParseText_Empty(t *testing.T) {
	_, err := vent.ParseText(strings.NewReader("\n\n"))
	require.ErrorIs(t, err, vent.ErrNoRooms)
}

// ------------------------------------------------------------------------
// 2. Accessors and handle assignment.
// ------------------------------------------------------------------------

func TestNetwork_Accessors(t *testing.T) {
	n := example(t)

	assert.Equal(t, 10, n.Order())

	bb, ok := n.Lookup("BB")
	require.True(t, ok)
	assert.Equal(t, 13, n.Flow(bb))
	assert.Equal(t, "BB", n.Name(bb))

	hh, ok := n.Lookup("HH")
	require.True(t, ok)
	assert.Equal(t, 22, n.Flow(hh))

	_, ok = n.Lookup("ZZ")
	assert.False(t, ok)

	// GG's passages lead to FF and HH with unit cost.
	gg, _ := n.Lookup("GG")
	var got []string
	for _, nb := range n.Neighbors(gg) {
		got = append(got, n.Name(nb.Room))
		assert.Equal(t, 1, nb.Weight)
	}
	assert.ElementsMatch(t, []string{"FF", "HH"}, got)
}

func TestBuild_HandlesAssignedOnFirstSight(t *testing.T) {
	n := example(t)

	// AA is declared first; its tunnel targets DD, II, BB are sighted next.
	for i, name := range []string{"AA", "DD", "II", "BB"} {
		id, ok := n.Lookup(name)
		require.True(t, ok)
		assert.Equal(t, vent.RoomID(i), id, "handle of %s", name)
	}
}

func TestNetwork_CloneIsIndependent(t *testing.T) {
	n := example(t)
	cp := n.Clone()

	start, _ := cp.Lookup("AA")
	require.NoError(t, cp.Compact(start))

	// Compacting the clone must not touch the original's passages.
	ff, _ := n.Lookup("FF")
	assert.NotEmpty(t, n.Neighbors(ff))
	assert.Empty(t, cp.Neighbors(ff))
}

// ------------------------------------------------------------------------
// 3. Shortest-path reference table for the example network.
// ------------------------------------------------------------------------

func TestShortestPaths_ExampleNetwork(t *testing.T) {
	n := example(t)
	paths := distmat.ShortestPaths(n.AdjacencyClone())

	names := []string{"AA", "BB", "CC", "DD", "EE", "FF", "GG", "HH", "II", "JJ"}
	want := []float64{
		//  a  b  c  d  e  f  g  h  i  j
		0, 1, 2, 1, 2, 3, 4, 5, 1, 2, // a
		1, 0, 1, 2, 3, 4, 5, 6, 2, 3, // b
		2, 1, 0, 1, 2, 3, 4, 5, 3, 4, // c
		1, 2, 1, 0, 1, 2, 3, 4, 2, 3, // d
		2, 3, 2, 1, 0, 1, 2, 3, 3, 4, // e
		3, 4, 3, 2, 1, 0, 1, 2, 4, 5, // f
		4, 5, 4, 3, 2, 1, 0, 1, 5, 6, // g
		5, 6, 5, 4, 3, 2, 1, 0, 6, 7, // h
		1, 2, 3, 2, 3, 4, 5, 6, 0, 1, // i
		2, 3, 4, 3, 4, 5, 6, 7, 1, 0, // j
	}
	for si, src := range names {
		for di, dst := range names {
			s, _ := n.Lookup(src)
			d, _ := n.Lookup(dst)
			assert.Equal(t, want[si*len(names)+di], paths.At(int(s), int(d)),
				"distance %s->%s", src, dst)
		}
	}
}
