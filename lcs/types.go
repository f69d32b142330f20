// SPDX-License-Identifier: MIT

package lcs

import "errors"

// MemoryMode controls how the DP table is stored.
//
//   - FullMatrix — keep the whole (n+1)×(m+1) table; supports reconstruction.
//   - TwoRows    — keep the previous and current row only; length only.
type MemoryMode int

const (
	// FullMatrix stores all rows, supports reconstruction, uses O(N·M) memory.
	FullMatrix MemoryMode = iota

	// TwoRows stores two rows, length only, uses O(min(N,M)) memory.
	TwoRows
)

// TieBreak picks the backtracking move when the left and upper neighbours
// of a mismatched cell hold equal lengths.
type TieBreak int

const (
	// PreferLeft drops the last element of B on ties.
	PreferLeft TieBreak = iota

	// PreferUp drops the last element of A on ties.
	PreferUp
)

// Options configures Find and Length.
//
// Fields:
//   - TieBreak   — backtracking preference on equal neighbours.
//   - MemoryMode — FullMatrix or TwoRows. Find requires FullMatrix.
type Options struct {
	TieBreak   TieBreak
	MemoryMode MemoryMode
}

// DefaultOptions returns PreferLeft with FullMatrix.
func DefaultOptions() Options {
	return Options{TieBreak: PreferLeft, MemoryMode: FullMatrix}
}

var (
	// ErrPathNeedsMatrix indicates reconstruction was requested with TwoRows.
	ErrPathNeedsMatrix = errors.New("lcs: reconstruction requires MemoryMode=FullMatrix")

	// ErrBadOption indicates an unknown TieBreak or MemoryMode value.
	ErrBadOption = errors.New("lcs: invalid option")
)

func (o *Options) validate() error {
	if o.TieBreak != PreferLeft && o.TieBreak != PreferUp {
		return ErrBadOption
	}
	if o.MemoryMode != FullMatrix && o.MemoryMode != TwoRows {
		return ErrBadOption
	}

	return nil
}
