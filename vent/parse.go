// Package vent: textual declaration parser.
//
// Input format, one room per line (singular/plural variants accepted):
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
package vent

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// declRe captures name, flow rate, and the comma-separated tunnel list.
var declRe = regexp.MustCompile(`^Valve ([A-Z]+) has flow rate=(\d+); tunnels? leads? to valves? (.*)$`)

// ParseText reads room declarations from r and builds the Network.
//
// Blank lines are skipped. Any other non-matching line fails with ErrBadLine
// wrapped with its line number. The flow-rate capture is digits-only, so a
// non-negative integer is guaranteed before strconv runs; a value overflowing
// int still surfaces as ErrBadLine.
//
// Complexity: O(input) parsing + Build cost.
func ParseText(r io.Reader) (*Network, error) {
	var (
		decls []Decl
		sc    = bufio.NewScanner(r)
		line  string
		no    int
	)
	for sc.Scan() {
		no++
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		caps := declRe.FindStringSubmatch(line)
		if caps == nil {
			return nil, fmt.Errorf("line %d: %w", no, ErrBadLine)
		}
		flow, err := strconv.Atoi(caps[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", no, ErrBadLine)
		}
		decls = append(decls, Decl{
			Name:    caps[1],
			Flow:    flow,
			Tunnels: strings.Split(caps[3], ", "),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("vent: read input: %w", err)
	}
	if len(decls) == 0 {
		return nil, ErrNoRooms
	}

	return Build(decls)
}
