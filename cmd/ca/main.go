//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"wolfram-ca/internal/app"
	"wolfram-ca/internal/automaton"
	"wolfram-ca/internal/rule"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	table, err := rule.New(cfg.Rule)
	if err != nil {
		log.Fatal(err)
	}
	seeder, ok := automaton.Seeders()[cfg.Init]
	if !ok {
		log.Fatalf("unknown seeder %q", cfg.Init)
	}
	if cfg.Width < 3 {
		log.Fatalf("width %d too narrow, need at least 3 cells", cfg.Width)
	}

	game := app.New(table, seeder, cfg)

	ebiten.SetWindowTitle(fmt.Sprintf("wolfram-ca — rule %d", cfg.Rule))
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Rows*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
