// Command export runs an elementary cellular automaton and writes the
// evolution as text to stdout or as an animated GIF.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"wolfram-ca/internal/automaton"
	"wolfram-ca/internal/core"
	"wolfram-ca/internal/render"
	"wolfram-ca/internal/rule"
)

func main() {
	ruleNum := flag.Int("rule", 90, "Wolfram rule number (0-255)")
	interesting := flag.Bool("interesting", false, "ignore -rule and pick a random interesting rule")
	width := flag.Int("width", 85, "initial configuration width in cells")
	gens := flag.Int("gens", 100, "generations to evolve")
	preset := flag.String("init", "single", "initial configuration seeder (single, random)")
	bits := flag.String("bits", "", "literal initial configuration, e.g. 0010100 (overrides -init)")
	seed := flag.Int64("seed", 42, "seed for random choices")
	out := flag.String("o", "", "output GIF path; empty prints text to stdout")
	glyph := flag.String("glyph", "#", "glyph for on cells in text output")
	flat := flag.Bool("flat", false, "left-align text output instead of centering")
	scale := flag.Int("scale", 4, "GIF pixel size per cell")
	delay := flag.Int("delay", 5, "GIF frame delay in 100ths of a second")
	flag.Parse()

	rng := core.NewRNG(*seed)

	table, err := rule.New(*ruleNum)
	if *interesting {
		table, err = rule.PickInteresting(rng)
	}
	if err != nil {
		log.Fatal(err)
	}

	var initial automaton.Row
	if *bits != "" {
		initial, err = automaton.ParseRow(*bits)
	} else {
		initial, err = automaton.Seed(*preset, *width, rng)
	}
	if err != nil {
		log.Fatal(err)
	}

	hist, err := automaton.Run(table, initial, *gens)
	if err != nil {
		log.Fatal(err)
	}

	if *out == "" {
		on := []rune(*glyph)
		if len(on) != 1 {
			log.Fatalf("-glyph must be a single character, got %q", *glyph)
		}
		if *flat {
			fmt.Println(render.Text(hist, on[0]))
		} else {
			fmt.Println(render.TextCentered(hist, on[0]))
		}
		return
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	opts := render.DefaultGIFOptions()
	opts.Scale = *scale
	opts.Delay = *delay
	if err := render.EncodeGIF(f, hist, opts); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s: %s, %d generations, final width %d\n", *out, table, *gens, len(hist.Final()))
}
