// Package cpkit is a small toolkit of classic competitive-programming
// routines, rewritten as safe, deterministic Go packages.
//
// 🚀 What is inside?
//
//	• sphere/   — great-circle distance via the chord-to-arc identity
//	• apsp/     — Floyd–Warshall all-pairs shortest paths with int64
//	              sentinels and negative-cycle propagation (-inf)
//	• lcs/      — generic longest common subsequence (DP table + backtrack)
//	• graphgen/ — deterministic Path/Cycle/Complete/RandomSparse fixtures
//	              producing *apsp.Dense matrices
//
// The cpkit command (cmd/cpkit) exposes every package from the shell:
//
//	cpkit sphere --degrees 51.5074 -0.1278 48.8566 2.3522
//	cpkit gen cycle -n 5 --weight -1 -o ring.yaml
//	cpkit apsp ring.yaml
//	cpkit lcs ABCBDAB BDCABA
//
// ✨ Guarantees
//
//   - Fixed loop orders and seeded RNGs: identical inputs give identical output.
//   - Sentinel errors matched with errors.Is; no panics on user input.
//   - Libraries never log; only the CLI does (log/slog on stderr).
//
// See each subpackage's doc.go for complexity notes and edge cases.
package cpkit
