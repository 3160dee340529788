// Command deal shuffles one deck, deals it, and prints the table twice: as
// the server holds it and as a viewer receives it.
package main

import (
	"flag"
	"fmt"
	"os"

	engine "github.com/nordklondike/klondike/engine"
	"github.com/nordklondike/klondike/service/internal/entropy"
	"github.com/nordklondike/klondike/service/internal/game"
	"github.com/sirupsen/logrus"
)

func main() {
	seedHex := flag.String("seed", "", "hex seed to deal from (default: fresh OS seed)")
	verbose := flag.Bool("v", false, "print card ids and flags")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)

	seed, err := loadSeed(*seedHex)
	if err != nil {
		log.WithError(err).Fatal("no seed")
	}
	deck, err := entropy.Deck(seed)
	if err != nil {
		log.WithError(err).Fatal("shuffle failed")
	}
	table := engine.NewTable(deck)
	if err := game.Deal(table); err != nil {
		log.WithError(err).Fatal("deal failed")
	}

	fmt.Println("seed:", seed)
	fmt.Println("deck:", render(deck, *verbose))
	fmt.Println("wire deck:", render(deck.Redact(), *verbose))
	fmt.Println()
	fmt.Println("server:")
	for _, p := range table.Piles() {
		fmt.Printf("  %-12s %s\n", p.Name(), render(p, *verbose))
	}
	fmt.Println("viewer:")
	for _, p := range table.Redact().Piles() {
		fmt.Printf("  %-12s %s\n", p.Name(), render(p, *verbose))
	}
}

func loadSeed(s string) (entropy.Seed, error) {
	if s == "" {
		return entropy.NewSeed()
	}
	return entropy.ParseSeed(s)
}

type cards interface {
	String() string
	GoString() string
}

func render(v cards, verbose bool) string {
	if verbose {
		return v.GoString()
	}
	return v.String()
}
