// Package lcs finds a longest common subsequence (LCS) of two sequences of
// comparable elements.
//
// 🚀 What is an LCS?
//
//	A subsequence keeps the relative order of elements but may skip any of
//	them. The LCS of A and B is a longest sequence that is a subsequence of
//	both. It underlies:
//	  • diff tools and patch generation
//	  • DNA / protein alignment (unit-cost variant)
//	  • fuzzy matching and similarity scores
//
// ✨ Key features:
//   - generic over any comparable element type (bytes, runes, tokens, ids)
//   - full-table mode: O(N·M) time & memory, reconstructs one LCS
//   - two-row mode: O(min(N,M)) memory when only the length is needed
//   - documented tie-break for reproducible output (PreferLeft / PreferUp)
//   - Strings: rune-level LCS of NFC-normalised text
//
// ⚙️ Usage:
//
//	seq := lcs.LCS([]byte("ABCBDAB"), []byte("BDCABA")) // len 4
//
//	opts := lcs.DefaultOptions()
//	opts.MemoryMode = lcs.TwoRows
//	n, err := lcs.Length(a, b, &opts)
//
// Several subsequences of maximal length usually exist; which one is returned
// depends only on TieBreak. Any of them is a correct answer.
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(min(N,M)) (TwoRows)
package lcs
