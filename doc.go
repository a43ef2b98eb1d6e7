// Package ventra is a time-bounded pressure-release maximization engine:
// given a network of rooms joined by passages, some of which hold a valve
// with a flow rate, and a fixed number of ticks, it finds the move/open
// schedule (for one or two cooperating agents) that releases the most
// pressure before time runs out.
//
// 🚀 What is ventra?
//
//	A small, deterministic search library built from three pieces:
//		• vent/     — the room/valve network model: declarations, handles,
//		              text parsing and zero-flow-room compaction
//		• distmat/  — square distance matrices + all-pairs shortest paths
//		              via min-plus matrix squaring
//		• pressure/ — the branch-and-bound core: state arena, admissible
//		              upper-bound estimator, best-first driver, and the
//		              single- and dual-agent entry points
//
// ✨ Why choose ventra?
//
//   - Exact answers – branch-and-bound with an admissible bound never
//     prunes the true optimum
//   - Deterministic – stable room handles, fixed loop orders, reproducible
//     distance tables
//   - Pure Go solver core – no cgo, no runtime deps in the library packages
//
// Quick ASCII example (flow rates in brackets):
//
//	AA[0]───BB[13]
//	  │       │
//	DD[20]──CC[2]
//
//	four rooms, three of them worth opening, one tick per passage.
//
// The cmd/ventra binary wraps the library for files or stdin:
//
//	ventra single input.txt
//	ventra dual --show-path input.txt
//
// Dive into the package docs of vent, distmat and pressure for contracts,
// complexity notes and runnable examples.
package ventra
