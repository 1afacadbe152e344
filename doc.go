// Package seatgrid arranges categorized entities on a rectangular grid so
// that no two edge-sharing cells hold the same category, given only
// per-category counts.
//
// 🚀 What is seatgrid?
//
//	A small constraint-solving toolkit built around one hard problem —
//	grid-graph coloring with exact per-color cardinalities:
//		• grid    — the shared model: categories, count requests, layouts,
//		            row-major index math, adjacency validation
//		• arrange — bounded randomized backtracking with independent
//		            restarts, plus a parallel racer over derived streams
//		• seat    — deterministic label assignment ("CSE-003") over a
//		            solved layout
//		• exact   — SAT backend (gini) that proves feasibility or
//		            infeasibility where the randomized engine can only
//		            report "not found"
//
// ✨ Why seatgrid?
//
//   - Honest contracts — exhaustion is never presented as impossibility
//   - Deterministic seams — every random choice flows from an injectable seed
//   - All-or-nothing API — a valid layout or a typed failure, no partials
//
// The cmd/seatgrid binary wraps the engines as a CLI and an HTTP JSON
// service with hall presets, hot config reload, and Prometheus metrics;
// the library packages stay free of presentation concerns.
//
// Quick ASCII example, a 2×3 hall with two branches:
//
//	CSE-001 ECE-001 CSE-002
//	ECE-002 CSE-003 ECE-003
//
//	go get github.com/katalvlaran/seatgrid
package seatgrid
