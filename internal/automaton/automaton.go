// Package automaton evolves one-dimensional elementary cellular automata.
//
// The lattice is conceptually infinite and all-off beyond the tracked
// cells, so every generation is two cells wider than its predecessor:
// activity reaching the edge propagates outward instead of being clipped.
package automaton

import (
	"errors"
	"fmt"
	"strings"

	"wolfram-ca/internal/rule"
)

// Cell states.
const (
	Off uint8 = 0
	On  uint8 = 1
)

var (
	// ErrInvalidSymbol reports a configuration cell outside {0, 1}.
	ErrInvalidSymbol = errors.New("configuration contains a symbol other than 0 or 1")
	// ErrInsufficientWidth reports a configuration too narrow to window.
	ErrInsufficientWidth = errors.New("configuration must be at least 3 cells wide")
	// ErrNegativeGenerations reports a negative generation count.
	ErrNegativeGenerations = errors.New("generation count must be non-negative")
)

// Row is one lattice configuration, one byte per cell, each Off or On.
type Row []uint8

// ParseRow converts a string of '0' and '1' characters into a Row.
func ParseRow(s string) (Row, error) {
	r := make(Row, len(s))
	for i, c := range s {
		switch c {
		case '0':
			r[i] = Off
		case '1':
			r[i] = On
		default:
			return nil, fmt.Errorf("position %d holds %q: %w", i, c, ErrInvalidSymbol)
		}
	}
	return r, nil
}

// String renders the row as a string of '0' and '1' characters.
func (r Row) String() string {
	var b strings.Builder
	b.Grow(len(r))
	for _, c := range r {
		b.WriteByte('0' + c)
	}
	return b.String()
}

// Validate checks that every cell is Off or On.
func (r Row) Validate() error {
	for i, c := range r {
		if c != Off && c != On {
			return fmt.Errorf("cell %d holds %d: %w", i, c, ErrInvalidSymbol)
		}
	}
	return nil
}

// History is the ordered sequence of configurations for generations
// 0..N. Element 0 is the caller's initial row, untouched.
type History []Row

// Final returns the last configuration of the history.
func (h History) Final() Row {
	if len(h) == 0 {
		return nil
	}
	return h[len(h)-1]
}

// Next computes one generation. Every length-3 window over the current
// row extended by two implicit off cells per side maps through the
// table, so the result is exactly two cells wider than cur. The input
// must already be validated; Next never mutates it.
func Next(t rule.Table, cur Row) Row {
	out := make(Row, len(cur)+2)
	for i := range out {
		// Window centered one cell left of out's origin; cells
		// beyond cur read the implicit all-off lattice.
		var l, c, r uint8
		if j := i - 2; j >= 0 && j < len(cur) {
			l = cur[j]
		}
		if j := i - 1; j >= 0 && j < len(cur) {
			c = cur[j]
		}
		if i < len(cur) {
			r = cur[i]
		}
		out[i] = t.Next(l, c, r)
	}
	return out
}

// Run evolves the initial row for the requested number of generations
// and returns the full history, generations+1 rows long. The initial
// row is validated and copied; it is never mutated. Any failure is
// reported before a single row is produced.
func Run(t rule.Table, initial Row, generations int) (History, error) {
	if generations < 0 {
		return nil, fmt.Errorf("%d generations: %w", generations, ErrNegativeGenerations)
	}
	if len(initial) < 3 {
		return nil, fmt.Errorf("width %d: %w", len(initial), ErrInsufficientWidth)
	}
	if err := initial.Validate(); err != nil {
		return nil, err
	}

	hist := make(History, 0, generations+1)
	cur := make(Row, len(initial))
	copy(cur, initial)
	hist = append(hist, cur)
	for g := 0; g < generations; g++ {
		cur = Next(t, cur)
		hist = append(hist, cur)
	}
	return hist, nil
}

// Simulate builds the table for the given Wolfram code once, then runs
// the engine. This is the usual entry point for callers holding a rule
// number rather than a table.
func Simulate(ruleNumber int, initial Row, generations int) (History, error) {
	t, err := rule.New(ruleNumber)
	if err != nil {
		return nil, err
	}
	return Run(t, initial, generations)
}
