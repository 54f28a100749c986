// Package rule builds transition tables for elementary (radius-1,
// two-state) cellular automata from their Wolfram codes.
package rule

import (
	"errors"
	"fmt"
)

// ErrInvalidRuleNumber reports a Wolfram code outside [0, 255].
var ErrInvalidRuleNumber = errors.New("rule number outside [0, 255]")

// Table maps every 3-cell neighborhood to its successor state. The index
// is the neighborhood read as a 3-bit integer with the left cell as the
// most significant bit, so the table is total by construction.
type Table [8]uint8

// New derives the transition table for the given Wolfram code: bit i of
// the code is the successor for the neighborhood whose pattern equals i.
func New(n int) (Table, error) {
	if n < 0 || n > 255 {
		return Table{}, fmt.Errorf("rule %d: %w", n, ErrInvalidRuleNumber)
	}
	var t Table
	for i := range t {
		t[i] = uint8(n>>i) & 1
	}
	return t, nil
}

// Next returns the successor state for the (left, center, right)
// neighborhood. Inputs must be 0 or 1.
func (t Table) Next(left, center, right uint8) uint8 {
	return t[left<<2|center<<1|right]
}

// Number recovers the Wolfram code the table was built from.
func (t Table) Number() uint8 {
	var n uint8
	for i, bit := range t {
		n |= bit << i
	}
	return n
}

// String renders the table as its conventional name, e.g. "rule 90".
func (t Table) String() string {
	return fmt.Sprintf("rule %d", t.Number())
}
