package rule

import "wolfram-ca/internal/core"

// Interesting lists rules that produce visually rich evolutions from
// simple seeds. Every entry is a valid Wolfram code; New validates the
// pick again so a bad edit here cannot slip through.
var Interesting = []int{
	18, 22, 26, 30, 45, 54, 60, 62, 73, 90,
	94, 102, 105, 110, 122, 126, 146, 150, 182, 225,
}

// PickInteresting returns the table for a randomly chosen entry of
// Interesting, using the caller's RNG for reproducibility.
func PickInteresting(rng *core.RNG) (Table, error) {
	n := Interesting[rng.IntN(len(Interesting))]
	return New(n)
}
