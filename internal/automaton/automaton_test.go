package automaton

import (
	"errors"
	"slices"
	"testing"

	"wolfram-ca/internal/core"
	"wolfram-ca/internal/rule"
)

func mustTable(t *testing.T, n int) rule.Table {
	t.Helper()
	table, err := rule.New(n)
	if err != nil {
		t.Fatalf("rule.New(%d): %v", n, err)
	}
	return table
}

func TestRunLengthGrowth(t *testing.T) {
	initial, err := ParseRow("00100")
	if err != nil {
		t.Fatalf("ParseRow: %v", err)
	}

	const gens = 6
	hist, err := Run(mustTable(t, 90), initial, gens)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(hist) != gens+1 {
		t.Fatalf("expected %d rows, got %d", gens+1, len(hist))
	}
	for k, row := range hist {
		if want := len(initial) + 2*k; len(row) != want {
			t.Fatalf("generation %d has width %d, expected %d", k, len(row), want)
		}
	}
}

func TestZeroGenerationsYieldsOnlyInitial(t *testing.T) {
	initial := Row{Off, On, Off}
	hist, err := Run(mustTable(t, 110), initial, 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(hist) != 1 {
		t.Fatalf("expected a single row, got %d", len(hist))
	}
	if !slices.Equal(hist[0], initial) {
		t.Fatalf("generation 0 differs from initial: %v vs %v", hist[0], initial)
	}
}

func TestInitialRowIsCopied(t *testing.T) {
	initial := Row{Off, On, Off}
	hist, err := Run(mustTable(t, 90), initial, 1)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	initial[0] = On
	if hist[0][0] != Off {
		t.Fatal("mutating the caller's row leaked into the history")
	}
}

func TestAllOffLatticeStaysOff(t *testing.T) {
	// Rule 90 maps 000 -> 0, so an all-off lattice only grows.
	hist, err := Run(mustTable(t, 90), Row{Off, Off, Off}, 4)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for k, row := range hist {
		if len(row) != 3+2*k {
			t.Fatalf("generation %d has width %d, expected %d", k, len(row), 3+2*k)
		}
		for i, c := range row {
			if c != Off {
				t.Fatalf("generation %d cell %d is on in an all-off lattice", k, i)
			}
		}
	}
}

// binomialOdd reports whether C(n, k) is odd, via Kummer's theorem:
// the binomial is odd exactly when k and n-k share no set bits.
func binomialOdd(n, k int) bool {
	return k&(n-k) == 0
}

func TestRule90MatchesPascalParity(t *testing.T) {
	const (
		width  = 85
		center = 42
		gens   = 100
	)
	initial := make(Row, width)
	initial[center] = On

	hist, err := Run(mustTable(t, 90), initial, gens)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// From a single seed, rule 90 generation n holds an on cell at
	// signed offset d from the center exactly when n+d is even and
	// C(n, (n+d)/2) is odd.
	for n, row := range hist {
		rowCenter := center + n
		for p, c := range row {
			d := p - rowCenter
			want := Off
			if d >= -n && d <= n && (n+d)%2 == 0 && binomialOdd(n, (n+d)/2) {
				want = On
			}
			if c != want {
				t.Fatalf("generation %d offset %d: got %d, expected %d", n, d, c, want)
			}
		}
	}
}

func TestRunsAreDeterministic(t *testing.T) {
	initial, err := Random(40, core.NewRNG(99))
	if err != nil {
		t.Fatalf("Random: %v", err)
	}

	table := mustTable(t, 110)
	a, err := Run(table, initial, 50)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	b, err := Run(table, initial, 50)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(a) != len(b) {
		t.Fatalf("history lengths differ: %d vs %d", len(a), len(b))
	}
	for k := range a {
		if !slices.Equal(a[k], b[k]) {
			t.Fatalf("generation %d differs between identical runs", k)
		}
	}
}

func TestWideRandomRun(t *testing.T) {
	initial, err := Random(300, core.NewRNG(2024))
	if err != nil {
		t.Fatalf("Random: %v", err)
	}

	hist, err := Run(mustTable(t, 30), initial, 200)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(hist) != 201 {
		t.Fatalf("expected 201 generations, got %d", len(hist))
	}
	if got := len(hist.Final()); got != 700 {
		t.Fatalf("final width %d, expected 700", got)
	}
}

func TestRunRejectsNegativeGenerations(t *testing.T) {
	_, err := Run(mustTable(t, 90), Row{Off, On, Off}, -1)
	if !errors.Is(err, ErrNegativeGenerations) {
		t.Fatalf("err = %v, expected ErrNegativeGenerations", err)
	}
}

func TestRunRejectsNarrowRow(t *testing.T) {
	for _, initial := range []Row{nil, {}, {On}, {On, Off}} {
		_, err := Run(mustTable(t, 90), initial, 1)
		if !errors.Is(err, ErrInsufficientWidth) {
			t.Fatalf("width %d: err = %v, expected ErrInsufficientWidth", len(initial), err)
		}
	}
}

func TestRunRejectsInvalidSymbol(t *testing.T) {
	_, err := Run(mustTable(t, 90), Row{Off, On, 2}, 1)
	if !errors.Is(err, ErrInvalidSymbol) {
		t.Fatalf("err = %v, expected ErrInvalidSymbol", err)
	}
}

func TestSimulateRejectsBadRuleNumber(t *testing.T) {
	_, err := Simulate(901, Row{Off, On, Off}, 1)
	if !errors.Is(err, rule.ErrInvalidRuleNumber) {
		t.Fatalf("err = %v, expected ErrInvalidRuleNumber", err)
	}
}

func TestParseRowRoundTrip(t *testing.T) {
	const s = "0110101"
	row, err := ParseRow(s)
	if err != nil {
		t.Fatalf("ParseRow: %v", err)
	}
	if got := row.String(); got != s {
		t.Fatalf("round trip %q -> %q", s, got)
	}

	if _, err := ParseRow("01x1"); !errors.Is(err, ErrInvalidSymbol) {
		t.Fatalf("err = %v, expected ErrInvalidSymbol", err)
	}
}
