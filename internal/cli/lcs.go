// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cpkit/lcs"
)

// LCSOptions holds flags for the lcs command.
type LCSOptions struct {
	*RootOptions
	Split    bool
	TieBreak string // "left" | "up"
}

// LCSResult is the JSON payload of the lcs command.
type LCSResult struct {
	Subsequence string   `json:"subsequence"`
	Tokens      []string `json:"tokens,omitempty"`
	Length      int      `json:"length"`
}

// NewLCSCommand creates the lcs command.
func NewLCSCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LCSOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "lcs <a> <b>",
		Short: "Longest common subsequence of two strings",
		Long: `Print one longest common subsequence of a and b.

Strings are NFC-normalised and compared rune by rune. With --split they are
split on whitespace and compared token by token.

Example:
  cpkit lcs ABCBDAB BDCABA
  cpkit lcs --split "the quick brown fox" "the brown dog"`,
		Args: exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLCS(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Split, "split", false, "compare whitespace-separated tokens")
	cmd.Flags().StringVar(&opts.TieBreak, "tie-break", "left", "backtracking preference on ties (left|up)")

	return cmd
}

func parseTieBreak(s string) (lcs.TieBreak, error) {
	switch s {
	case "left":
		return lcs.PreferLeft, nil
	case "up":
		return lcs.PreferUp, nil
	default:
		return 0, fmt.Errorf("invalid tie-break %q: must be left or up", s)
	}
}

func runLCS(opts *LCSOptions, a, b string, cmd *cobra.Command) error {
	tie, err := parseTieBreak(opts.TieBreak)
	if err != nil {
		return WrapExitError(ExitCommandError, "bad flag", err)
	}
	o := lcs.DefaultOptions()
	o.TieBreak = tie

	var res LCSResult
	if opts.Split {
		toks, err := lcs.Find(strings.Fields(a), strings.Fields(b), &o)
		if err != nil {
			return WrapExitError(ExitFailure, "lcs failed", err)
		}
		res = LCSResult{Subsequence: strings.Join(toks, " "), Tokens: toks, Length: len(toks)}
	} else {
		s, err := lcs.FindStrings(a, b, &o)
		if err != nil {
			return WrapExitError(ExitFailure, "lcs failed", err)
		}
		res = LCSResult{Subsequence: s, Length: len([]rune(s))}
	}
	opts.Logger.Debug("lcs", "split", opts.Split, "tie_break", opts.TieBreak, "length", res.Length)

	text := fmt.Sprintf("%s\nlength: %d\n", res.Subsequence, res.Length)
	return opts.formatter(cmd).Success(text, res)
}
