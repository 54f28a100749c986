package automaton

import (
	"fmt"

	"wolfram-ca/internal/core"
)

// Seeder produces an initial configuration of the given width. Seeders
// draw any randomness from the supplied RNG so runs stay reproducible.
type Seeder func(width int, rng *core.RNG) (Row, error)

var seeders = map[string]Seeder{}

// RegisterSeeder adds an initial-configuration generator under the
// provided name.
func RegisterSeeder(name string, s Seeder) {
	if name == "" || s == nil {
		return
	}
	seeders[name] = s
}

// Seeders exposes the registry of available seeders.
func Seeders() map[string]Seeder {
	return seeders
}

// Seed resolves a registered seeder by name and invokes it.
func Seed(name string, width int, rng *core.RNG) (Row, error) {
	s, ok := seeders[name]
	if !ok {
		return nil, fmt.Errorf("unknown seeder %q", name)
	}
	return s(width, rng)
}

func checkWidth(width int) error {
	if width < 3 {
		return fmt.Errorf("width %d: %w", width, ErrInsufficientWidth)
	}
	return nil
}

// SingleCenter returns an all-off row with one on cell in the middle.
func SingleCenter(width int, _ *core.RNG) (Row, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	r := make(Row, width)
	r[width/2] = On
	return r, nil
}

// Random returns a row of independently coin-flipped cells.
func Random(width int, rng *core.RNG) (Row, error) {
	if err := checkWidth(width); err != nil {
		return nil, err
	}
	r := make(Row, width)
	core.FillBinary(rng.Source(), r)
	return r, nil
}

func init() {
	RegisterSeeder("single", SingleCenter)
	RegisterSeeder("random", Random)
}
