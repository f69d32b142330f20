// SPDX-License-Identifier: MIT

package lcs

import "golang.org/x/text/unicode/norm"

// LCS — Longest Common Subsequence
//
// Algorithm Outline (FullMatrix):
//  1. Let n = len(a), m = len(b). Allocate the (n+1)×(m+1) table dp, zeroed.
//  2. For i = 1..n, j = 1..m:
//     dp[i][j] = dp[i-1][j-1] + 1             if a[i-1] == b[j-1]
//     dp[i][j] = max(dp[i][j-1], dp[i-1][j])  otherwise
//  3. Backtrack from (n, m) while both indices are positive:
//     match          → emit a[i-1], step diagonally
//     left > up      → j--
//     up > left      → i--
//     left == up     → TieBreak decides (PreferLeft: j--, PreferUp: i--)
//  4. The emitted elements, written back to front, form one LCS of
//     length dp[n][m] in original relative order.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m) (FullMatrix) or O(min(n,m)) (TwoRows, length only)

// LCS returns one longest common subsequence of a and b using
// DefaultOptions (ties drop the last element of b first).
//
// The result is a fresh slice; empty input yields an empty, non-nil slice.
func LCS[T comparable](a, b []T) []T {
	return reconstruct(Table(a, b), a, b, PreferLeft)
}

// Find is LCS with explicit options. A nil opts means DefaultOptions().
//
// Errors:
//   - ErrBadOption       — unknown TieBreak or MemoryMode.
//   - ErrPathNeedsMatrix — MemoryMode=TwoRows cannot reconstruct.
func Find[T comparable](a, b []T, opts *Options) ([]T, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if o.MemoryMode != FullMatrix {
		return nil, ErrPathNeedsMatrix
	}

	return reconstruct(Table(a, b), a, b, o.TieBreak), nil
}

// Length returns the LCS length of a and b. A nil opts means DefaultOptions().
// With TwoRows only min(len(a), len(b))+1 cells are kept per row.
//
// Errors: ErrBadOption for unknown option values.
func Length[T comparable](a, b []T, opts *Options) (int, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return 0, err
	}
	if o.MemoryMode == FullMatrix {
		return Table(a, b)[len(a)][len(b)], nil
	}

	return lengthTwoRows(a, b), nil
}

// Table returns the full (len(a)+1)×(len(b)+1) DP table where
// Table[i][j] is the LCS length of a[:i] and b[:j].
func Table[T comparable](a, b []T) [][]int {
	n, m := len(a), len(b)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i][j-1], dp[i-1][j])
			}
		}
	}

	return dp
}

// reconstruct walks dp back from (len(a), len(b)).
func reconstruct[T comparable](dp [][]int, a, b []T, tie TieBreak) []T {
	i, j := len(a), len(b)
	k := dp[i][j]
	out := make([]T, k)

	for i > 0 && j > 0 {
		if a[i-1] == b[j-1] {
			k--
			out[k] = a[i-1]
			i--
			j--

			continue
		}
		left, up := dp[i][j-1], dp[i-1][j]
		if left > up || (left == up && tie == PreferLeft) {
			j--
		} else {
			i--
		}
	}

	return out
}

// lengthTwoRows computes dp[n][m] keeping two rows over the shorter input.
func lengthTwoRows[T comparable](a, b []T) int {
	if len(b) > len(a) {
		a, b = b, a
	}
	m := len(b)
	prev := make([]int, m+1)
	curr := make([]int, m+1)

	for i := 1; i <= len(a); i++ {
		curr[0] = 0
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(curr[j-1], prev[j])
			}
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// IsSubsequence reports whether sub can be obtained from seq by deleting
// zero or more elements without reordering the rest.
func IsSubsequence[T comparable](sub, seq []T) bool {
	k := 0
	for i := 0; i < len(seq) && k < len(sub); i++ {
		if seq[i] == sub[k] {
			k++
		}
	}

	return k == len(sub)
}

// Strings returns a rune-level LCS of a and b after NFC normalisation, so a
// precomposed "é" and "e" + combining acute compare equal.
func Strings(a, b string) string {
	s, _ := FindStrings(a, b, nil)

	return s
}

// FindStrings is Strings with explicit options (nil means DefaultOptions()).
// Errors are those of Find.
func FindStrings(a, b string, opts *Options) (string, error) {
	ra := []rune(norm.NFC.String(a))
	rb := []rune(norm.NFC.String(b))
	out, err := Find(ra, rb, opts)
	if err != nil {
		return "", err
	}

	return string(out), nil
}
